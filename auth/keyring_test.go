package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestToken(t *testing.T) {
	Convey("Given the mock keyring", t, func() {
		So(DeleteToken(), ShouldBeNil)

		Convey("Token reports a missing token", func() {
			_, err := Token()
			So(err, ShouldEqual, ErrNoToken)
		})

		Convey("A stored token can be read back and deleted", func() {
			So(SetToken("s3cret"), ShouldBeNil)

			token, err := Token()
			So(err, ShouldBeNil)
			So(token, ShouldEqual, "s3cret")

			So(DeleteToken(), ShouldBeNil)
			_, err = Token()
			So(err, ShouldEqual, ErrNoToken)
		})

		Convey("An empty token is rejected", func() {
			So(SetToken(""), ShouldNotBeNil)
		})
	})
}
