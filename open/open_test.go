package open

import (
	"testing"

	"github.com/epilist-cli/epilist/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Command picks the handler for each OS", t, func() {
		const url = "https://rickandmortyapi.com/api/episode/1"

		cmd, err := Command(constant.Linux, url)
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"xdg-open", url})

		cmd, err = Command(constant.Darwin, url)
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"open", url})

		cmd, err = Command(constant.Android, url)
		So(err, ShouldBeNil)
		So(cmd.Args[0], ShouldEqual, "termux-open")

		_, err = Command("plan9", url)
		So(err, ShouldNotBeNil)
	})
}
