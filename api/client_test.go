package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/filesystem"
	"github.com/epilist-cli/epilist/internal/cache"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	filesystem.SetMemMapFs()
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))
}

// listing serves three pages of five episodes each, plus /<id> for details.
type listing struct {
	hits      atomic.Int32
	failPage  int
	lastAuth  atomic.Value
	lastQuery atomic.Value
}

func (l *listing) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l.hits.Add(1)
	l.lastAuth.Store(r.Header.Get("Authorization"))
	l.lastQuery.Store(r.URL.RawQuery)

	if id := strings.TrimPrefix(r.URL.Path, "/episode/"); id != r.URL.Path {
		n, err := strconv.Atoi(id)
		if err != nil || n < 1 || n > 15 {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(makeEpisode(n))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page == 0 {
		page = 1
	}
	if page == l.failPage {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	if page > 3 {
		http.Error(w, `{"error":"There is nothing here"}`, http.StatusNotFound)
		return
	}

	resp := episode.Page{Info: episode.Info{Count: 15, Pages: 3}}
	for i := 1; i <= 5; i++ {
		resp.Results = append(resp.Results, makeEpisode((page-1)*5+i))
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func makeEpisode(id int) *episode.Episode {
	return &episode.Episode{
		ID:   id,
		Name: fmt.Sprintf("Episode %d", id),
		Code: fmt.Sprintf("S01E%02d", id),
		URL:  fmt.Sprintf("https://example.test/episode/%d", id),
	}
}

func newTestClient(l *listing, options ...Option) (*Client, func()) {
	srv := httptest.NewServer(l)
	options = append([]Option{WithHTTPClient(srv.Client())}, options...)
	return New(srv.URL+"/episode", options...), func() {
		srv.CloseClientConnections()
		srv.Close()
	}
}

func TestPageURL(t *testing.T) {
	Convey("PageURL", t, func() {
		So(PageURL("https://rickandmortyapi.com/api/episode", 2), ShouldEqual, "https://rickandmortyapi.com/api/episode?page=2")
		So(PageURL("https://example.test/episode?lang=en", 3), ShouldEqual, "https://example.test/episode?lang=en&page=3")
		So(PageURL("https://example.test/episode?page=9", 1), ShouldEqual, "https://example.test/episode?page=1")
	})
}

func TestEpisodeURL(t *testing.T) {
	Convey("EpisodeURL", t, func() {
		So(EpisodeURL("https://rickandmortyapi.com/api/episode", 5), ShouldEqual, "https://rickandmortyapi.com/api/episode/5")
		So(EpisodeURL("https://example.test/episode/", 5), ShouldEqual, "https://example.test/episode/5")
		So(EpisodeURL("https://example.test/episode?lang=en", 5), ShouldEqual, "https://example.test/episode/5?lang=en")
	})
}

func TestFetchPage(t *testing.T) {
	Convey("Given a listing with three pages", t, func() {
		l := &listing{}
		client, closeFn := newTestClient(l)
		defer closeFn()
		ctx := context.Background()

		Convey("Fetching page 2 returns its episodes and info", func() {
			page, err := client.FetchPage(ctx, 2)
			So(err, ShouldBeNil)
			So(page.Info.Pages, ShouldEqual, 3)
			So(page.Results, ShouldHaveLength, 5)
			So(page.Results[0].ID, ShouldEqual, 6)
			So(l.lastQuery.Load(), ShouldEqual, "page=2")
		})

		Convey("Pages below 1 are rejected without a request", func() {
			_, err := client.FetchPage(ctx, 0)
			So(errors.Is(err, ErrInvalidPage), ShouldBeTrue)
			So(l.hits.Load(), ShouldEqual, 0)
		})

		Convey("A missing page is a StatusError", func() {
			_, err := client.FetchPage(ctx, 4)
			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("A cancelled context fails the request", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := client.FetchPage(cancelled, 1)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})

	Convey("Given a server answering with invalid JSON", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}))
		defer srv.Close()

		_, err := New(srv.URL, WithHTTPClient(srv.Client())).FetchPage(context.Background(), 1)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "decode response")
	})
}

func TestFetchPages(t *testing.T) {
	Convey("Given a listing with three pages", t, func() {
		l := &listing{}
		client, closeFn := newTestClient(l)
		defer closeFn()
		ctx := context.Background()

		Convey("Pages come back in argument order", func() {
			pages, err := client.FetchPages(ctx, 2, 1)
			So(err, ShouldBeNil)
			So(pages, ShouldHaveLength, 2)
			So(pages[0].Results[0].ID, ShouldEqual, 6)
			So(pages[1].Results[0].ID, ShouldEqual, 1)
		})

		Convey("One failing page fails the whole join", func() {
			l.failPage = 2
			pages, err := client.FetchPages(ctx, 1, 2)
			So(pages, ShouldBeNil)
			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.Code, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("No pages is an empty result", func() {
			pages, err := client.FetchPages(ctx)
			So(err, ShouldBeNil)
			So(pages, ShouldBeEmpty)
		})
	})
}

func TestEpisode(t *testing.T) {
	Convey("Given a listing", t, func() {
		l := &listing{}
		client, closeFn := newTestClient(l)
		defer closeFn()

		Convey("An episode is fetched by id", func() {
			ep, err := client.Episode(context.Background(), 7)
			So(err, ShouldBeNil)
			So(ep.Name, ShouldEqual, "Episode 7")
		})

		Convey("Query parameters of the endpoint stay on the detail request", func() {
			srv := httptest.NewServer(l)
			defer func() {
				srv.CloseClientConnections()
				srv.Close()
			}()
			withQuery := New(srv.URL+"/episode?lang=en", WithHTTPClient(srv.Client()))

			ep, err := withQuery.Episode(context.Background(), 5)
			So(err, ShouldBeNil)
			So(ep.ID, ShouldEqual, 5)
			So(l.lastQuery.Load(), ShouldEqual, "lang=en")
		})

		Convey("An unknown id is a 404", func() {
			_, err := client.Episode(context.Background(), 99)
			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestOptions(t *testing.T) {
	Convey("Given a listing", t, func() {
		l := &listing{}

		Convey("WithToken sends a bearer header", func() {
			client, closeFn := newTestClient(l, WithToken("abc"))
			defer closeFn()

			_, err := client.FetchPage(context.Background(), 1)
			So(err, ShouldBeNil)
			So(l.lastAuth.Load(), ShouldEqual, "Bearer abc")
		})

		Convey("WithCache serves repeated pages without a request", func() {
			client, closeFn := newTestClient(l, WithCache(cache.New("/pages", time.Hour)))
			defer closeFn()

			first, err := client.FetchPage(context.Background(), 3)
			So(err, ShouldBeNil)
			second, err := client.FetchPage(context.Background(), 3)
			So(err, ShouldBeNil)

			So(l.hits.Load(), ShouldEqual, 1)
			So(second.Results[4].ID, ShouldEqual, first.Results[4].ID)
		})
	})
}
