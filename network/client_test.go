package network

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/epilist-cli/epilist/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a server echoing the User-Agent", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Seen-Agent", r.UserAgent())
		}))
		defer srv.Close()

		client := New(5 * time.Second)

		Convey("The default agent is added", func() {
			resp, err := client.Get(srv.URL)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.Header.Get("X-Seen-Agent"), ShouldEqual, constant.UserAgent)
		})

		Convey("An explicit agent is kept", func() {
			req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
			req.Header.Set("User-Agent", "custom/1.0")
			resp, err := client.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.Header.Get("X-Seen-Agent"), ShouldEqual, "custom/1.0")
		})
	})
}
