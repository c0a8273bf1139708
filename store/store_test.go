package store

import (
	"sync"
	"testing"

	"github.com/epilist-cli/epilist/episode"
	. "github.com/smartystreets/goconvey/convey"
)

func ep(id int) *episode.Episode {
	return &episode.Episode{ID: id, Name: "Episode", Code: "S01E01"}
}

func TestReduce(t *testing.T) {
	Convey("Given an empty state", t, func() {
		var s State

		Convey("FetchEpisodes replaces episodes and info", func() {
			next := Reduce(s, Fetched(&episode.Page{
				Info:    episode.Info{Count: 2, Pages: 1},
				Results: []*episode.Episode{ep(1), ep(2)},
			}))

			So(next.Episodes, ShouldHaveLength, 2)
			So(next.Info.Pages, ShouldEqual, 1)
			So(s.Episodes, ShouldBeEmpty)
		})

		Convey("AddToFavorites appends once", func() {
			next := Reduce(s, Action{Kind: AddToFavorites, Episode: ep(3)})
			next = Reduce(next, Action{Kind: AddToFavorites, Episode: ep(3)})

			So(next.Favorites, ShouldHaveLength, 1)
			So(next.IsFavorite(3), ShouldBeTrue)
		})

		Convey("RemoveFromFavorites of a missing episode is a no-op", func() {
			next := Reduce(s, Action{Kind: RemoveFromFavorites, Episode: ep(4)})
			So(next.Favorites, ShouldBeEmpty)
		})
	})

	Convey("Given a state with favorites", t, func() {
		s := State{Favorites: []*episode.Episode{ep(1), ep(2), ep(3)}}

		Convey("Removing keeps the order of the rest and leaves the input intact", func() {
			next := Reduce(s, Action{Kind: RemoveFromFavorites, Episode: ep(2)})

			So(next.Favorites, ShouldHaveLength, 2)
			So(next.Favorites[0].ID, ShouldEqual, 1)
			So(next.Favorites[1].ID, ShouldEqual, 3)
			So(s.Favorites, ShouldHaveLength, 3)
			So(s.Favorites[1].ID, ShouldEqual, 2)
		})

		Convey("Adding does not write into the input's backing array", func() {
			base := State{Favorites: make([]*episode.Episode, 1, 4)}
			base.Favorites[0] = ep(1)

			a := Reduce(base, Action{Kind: AddToFavorites, Episode: ep(5)})
			b := Reduce(base, Action{Kind: AddToFavorites, Episode: ep(6)})

			So(a.Favorites[1].ID, ShouldEqual, 5)
			So(b.Favorites[1].ID, ShouldEqual, 6)
		})

		Convey("Favorites match by id, not by pointer", func() {
			So(s.IsFavorite(1), ShouldBeTrue)
			So(s.IsFavorite(9), ShouldBeFalse)
		})
	})
}

func TestKindString(t *testing.T) {
	Convey("Action kinds print as their dispatch names", t, func() {
		So(FetchEpisodes.String(), ShouldEqual, "FETCH_EPISODES")
		So(AddToFavorites.String(), ShouldEqual, "ADD_TO_FAVORITES")
		So(RemoveFromFavorites.String(), ShouldEqual, "REMOVE_FROM_FAVORITES")
		So(Kind(0).String(), ShouldEqual, "UNKNOWN")
	})
}

func TestStore(t *testing.T) {
	Convey("Given a store", t, func() {
		s := New()

		Convey("ToggleFavorite flips membership", func() {
			So(s.ToggleFavorite(ep(1)), ShouldBeTrue)
			So(s.IsFavorite(1), ShouldBeTrue)
			So(s.ToggleFavorite(ep(1)), ShouldBeFalse)
			So(s.IsFavorite(1), ShouldBeFalse)
		})

		Convey("Snapshots are not affected by later dispatches", func() {
			s.Dispatch(Action{Kind: AddToFavorites, Episode: ep(1)})
			snapshot := s.State()
			s.Dispatch(Action{Kind: AddToFavorites, Episode: ep(2)})

			So(snapshot.Favorites, ShouldHaveLength, 1)
			So(s.State().Favorites, ShouldHaveLength, 2)
		})

		Convey("Concurrent toggles of distinct episodes all land", func() {
			var wg sync.WaitGroup
			for i := 1; i <= 50; i++ {
				wg.Add(1)
				go func(id int) {
					defer wg.Done()
					s.ToggleFavorite(ep(id))
				}(i)
			}
			wg.Wait()

			So(s.State().Favorites, ShouldHaveLength, 50)
		})
	})
}
