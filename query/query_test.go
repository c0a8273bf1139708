package query

import (
	"testing"

	"github.com/epilist-cli/epilist/filesystem"
	"github.com/epilist-cli/epilist/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered queries", t, func() {
		So(Remember("Pickle", 1), ShouldBeNil)
		So(Remember("  PILOT ", 10), ShouldBeNil)

		Convey("Suggestions are sorted by rank", func() {
			s := SuggestMany("pi")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
			So(s[0], ShouldEqual, "pilot")
			So(Suggest("pi").MustGet(), ShouldEqual, "pilot")
		})

		Convey("Remembering again reorders memoized suggestions", func() {
			_ = SuggestMany("pi")
			So(Remember("pickle", 100), ShouldBeNil)
			So(SuggestMany("pi")[0], ShouldEqual, "pickle")
		})

		Convey("The exact input is not suggested back", func() {
			So(SuggestMany("pilot"), ShouldNotContain, "pilot")
		})

		Convey("Blank input has no suggestions", func() {
			So(Suggest("  ").IsAbsent(), ShouldBeTrue)
		})

		Convey("Suggestions can be turned off", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)
			So(SuggestMany("pi"), ShouldBeEmpty)
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("normalize trims and lowercases", t, func() {
		So(normalize("  RICK  "), ShouldEqual, "rick")
	})
}
