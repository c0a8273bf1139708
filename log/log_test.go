package log

import (
	"bytes"
	"testing"

	"github.com/epilist-cli/epilist/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestLog(t *testing.T) {
	Convey("Given logging to a buffer", t, func() {
		viper.Set(key.LogsLevel, "info")
		viper.Set(key.LogsJson, false)

		var buf bytes.Buffer
		SetOutput(&buf)

		Convey("Info lines are written", func() {
			Infof("fetched page %d", 3)
			So(buf.String(), ShouldContainSubstring, "fetched page 3")
		})

		Convey("Debug lines are filtered at info level", func() {
			Debug("hidden")
			So(buf.String(), ShouldNotContainSubstring, "hidden")
		})

		Convey("JSON output carries fields", func() {
			viper.Set(key.LogsJson, true)
			SetOutput(&buf)
			With(Fields{"page": 2}).Info("page fetched")
			So(buf.String(), ShouldContainSubstring, `"page":2`)
		})

		Reset(func() {
			viper.Set(key.LogsJson, false)
		})
	})
}
