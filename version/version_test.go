package version

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/epilist-cli/epilist/filesystem"
	"github.com/epilist-cli/epilist/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.3.1", "0.10.0", -1},
			{"2", "1.9.9", 1},
			{"1.0", "1.0.0", 0},
			{"1.0.1-rc1", "1.0.1", 0},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}

		_, err := Compare("one", "1.0.0")
		So(err, ShouldNotBeNil)
		_, err = Compare("1.0.0.0", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		filesystem.SetMemMapFs()

		var hits int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"tag_name":"v9.9.9"}`))
		}))
		defer srv.Close()

		prev := releasesURL
		releasesURL = srv.URL
		defer func() { releasesURL = prev }()

		Convey("Latest strips the prefix and caches the answer", func() {
			latest, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "9.9.9")

			latest, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "9.9.9")
			So(hits, ShouldEqual, 1)
		})

		Convey("Notify announces the newer version", func() {
			viper.Set(key.CliVersionCheck, true)
			defer viper.Set(key.CliVersionCheck, false)

			var out bytes.Buffer
			Notify(&out)
			So(out.String(), ShouldContainSubstring, "9.9.9")
		})
	})
}
