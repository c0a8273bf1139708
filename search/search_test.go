package search

import (
	"context"
	"errors"
	"testing"

	"github.com/epilist-cli/epilist/constant"
	"github.com/epilist-cli/epilist/episode"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeSource struct {
	pages     map[int]*episode.Page
	err       error
	requested [][]int
}

func (f *fakeSource) FetchPage(_ context.Context, page int) (*episode.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[page], nil
}

func (f *fakeSource) FetchPages(ctx context.Context, pages ...int) ([]*episode.Page, error) {
	f.requested = append(f.requested, pages)
	var result []*episode.Page
	for _, p := range pages {
		page, err := f.FetchPage(ctx, p)
		if err != nil {
			return nil, err
		}
		result = append(result, page)
	}
	return result, nil
}

func (f *fakeSource) Episode(context.Context, int) (*episode.Episode, error) {
	return nil, errors.New("not implemented")
}

func named(id int, name string) *episode.Episode {
	return &episode.Episode{ID: id, Name: name}
}

func TestCompile(t *testing.T) {
	Convey("Compile", t, func() {
		Convey("Blank queries are empty and match nothing", func() {
			m := Compile("   ")
			So(m.Empty(), ShouldBeTrue)
			So(m.Match("Pilot"), ShouldBeFalse)
		})

		Convey("Matching ignores case", func() {
			m := Compile("PILOT")
			So(m.Empty(), ShouldBeFalse)
			So(m.Match("Pilot"), ShouldBeTrue)
		})

		Convey("Regular expressions are honored", func() {
			So(Compile("^rick").Match("Rick Potion #9"), ShouldBeTrue)
			So(Compile("^rick").Match("Pickle Rick"), ShouldBeFalse)
		})

		Convey("Invalid patterns fall back to a literal match", func() {
			m := Compile("potion (")
			So(m.Match("The Potion (Part 2)"), ShouldBeTrue)
			So(m.Match("Potion"), ShouldBeFalse)
		})
	})
}

func TestFilter(t *testing.T) {
	Convey("Filter keeps matching episodes in order", t, func() {
		episodes := []*episode.Episode{named(1, "Pilot"), named(2, "Lawnmower Dog"), named(3, "Anatomy Park"), named(4, "M. Night Shaym-Aliens!")}

		result := Filter(episodes, Compile("a"))
		So(result, ShouldHaveLength, 3)
		So(result[0].ID, ShouldEqual, 2)
		So(result[1].ID, ShouldEqual, 3)
		So(result[2].ID, ShouldEqual, 4)
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a source with three pages", t, func() {
		src := &fakeSource{pages: map[int]*episode.Page{
			1: {Results: []*episode.Episode{named(1, "Pilot"), named(2, "Rick Potion #9")}},
			2: {Results: []*episode.Episode{named(21, "The Wedding Squanchers"), named(22, "Rickmancing the Stone")}},
			3: {Results: []*episode.Episode{named(31, "Pickle Rick")}},
		}}
		s := Searcher{Source: src}

		Convey("Only the first pages are searched", func() {
			result, err := s.Search(context.Background(), "rick")
			So(err, ShouldBeNil)
			So(result, ShouldHaveLength, 2)
			So(result[0].ID, ShouldEqual, 2)
			So(result[1].ID, ShouldEqual, 22)
			So(src.requested, ShouldHaveLength, 1)
			So(src.requested[0], ShouldHaveLength, constant.SearchPages)
			So(src.requested[0][0], ShouldEqual, 1)
		})

		Convey("A blank query fetches nothing", func() {
			result, err := s.Search(context.Background(), "")
			So(err, ShouldBeNil)
			So(result, ShouldBeNil)
			So(src.requested, ShouldBeEmpty)
		})

		Convey("Fetch errors are returned", func() {
			src.err = errors.New("offline")
			_, err := s.Search(context.Background(), "rick")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "offline")
		})
	})
}
