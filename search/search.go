// Package search finds episodes by name across the first pages of the listing.
package search

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/epilist-cli/epilist/api"
	"github.com/epilist-cli/epilist/constant"
	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/log"
	"github.com/samber/lo"
)

// Matcher tests episode names against a compiled query.
type Matcher struct {
	query   string
	pattern *regexp.Regexp
}

// Compile builds a case-insensitive matcher for query.
// Queries that are not valid regular expressions match as literal substrings.
func Compile(query string) Matcher {
	query = strings.TrimSpace(query)
	if query == "" {
		return Matcher{}
	}

	pattern, err := regexp.Compile("(?i)" + query)
	if err != nil {
		pattern = regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	}

	return Matcher{query: query, pattern: pattern}
}

// Empty reports whether the matcher was built from a blank query. An empty matcher matches nothing.
func (m Matcher) Empty() bool {
	return m.pattern == nil
}

// String returns the trimmed query.
func (m Matcher) String() string {
	return m.query
}

// Match reports whether name matches.
func (m Matcher) Match(name string) bool {
	return m.pattern != nil && m.pattern.MatchString(name)
}

// Filter keeps the episodes whose name matches, in their original order.
func Filter(episodes []*episode.Episode, m Matcher) []*episode.Episode {
	return lo.Filter(episodes, func(e *episode.Episode, _ int) bool {
		return m.Match(e.Name)
	})
}

// Searcher runs queries against a source.
type Searcher struct {
	Source api.Source
}

// Search fetches the first constant.SearchPages pages concurrently and returns
// the matching episodes. A blank query returns nil without fetching anything.
func (s Searcher) Search(ctx context.Context, query string) ([]*episode.Episode, error) {
	m := Compile(query)
	if m.Empty() {
		return nil, nil
	}

	pages, err := s.Source.FetchPages(ctx, lo.RangeFrom(1, constant.SearchPages)...)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", m, err)
	}

	all := lo.FlatMap(pages, func(p *episode.Page, _ int) []*episode.Episode {
		return p.Results
	})
	matches := Filter(all, m)

	log.With(log.Fields{"query": m.String(), "scanned": len(all), "matches": len(matches)}).Info("search")
	return matches, nil
}
