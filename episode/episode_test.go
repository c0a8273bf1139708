package episode

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const pilotJSON = `{
	"id": 1,
	"name": "Pilot",
	"air_date": "December 2, 2013",
	"episode": "S01E01",
	"characters": ["https://rickandmortyapi.com/api/character/1"],
	"url": "https://rickandmortyapi.com/api/episode/1",
	"created": "2017-11-10T12:56:33.798Z"
}`

func TestEpisode(t *testing.T) {
	Convey("Given an episode decoded from the API", t, func() {
		var ep Episode
		So(json.Unmarshal([]byte(pilotJSON), &ep), ShouldBeNil)

		Convey("Fields are mapped", func() {
			So(ep.ID, ShouldEqual, 1)
			So(ep.Name, ShouldEqual, "Pilot")
			So(ep.Code, ShouldEqual, "S01E01")
			So(ep.Characters, ShouldHaveLength, 1)
			So(ep.Created.Year(), ShouldEqual, 2017)
		})

		Convey("The detail route uses the identifier", func() {
			So(ep.DetailRoute(), ShouldEqual, "episode/1")
		})

		Convey("Season and number come from the code", func() {
			ep.Code = "S03E10"
			So(ep.Season(), ShouldEqual, 3)
			So(ep.Number(), ShouldEqual, 10)
		})

		Convey("A malformed code yields zeroes", func() {
			ep.Code = "special"
			So(ep.Season(), ShouldEqual, 0)
			So(ep.Number(), ShouldEqual, 0)
		})
	})
}

func TestFormatCode(t *testing.T) {
	Convey("FormatCode", t, func() {
		So(FormatCode("S01E02"), ShouldEqual, "1 Episode 2")
		So(FormatCode("s10e11"), ShouldEqual, "10 Episode 11")
		So(FormatCode("S4E1"), ShouldEqual, "4 Episode 1")
		So(FormatCode("Bonus"), ShouldEqual, "Bonus")
		So(FormatCode(""), ShouldEqual, "")
	})
}
