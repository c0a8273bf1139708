// Package query remembers submitted searches and suggests them back.
package query

import (
	"strings"
	"sync"

	"github.com/epilist-cli/epilist/filesystem"
	"github.com/epilist-cli/epilist/key"
	"github.com/epilist-cli/epilist/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	mu      sync.Mutex
	history = gache.New[map[string]*record](
		&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
	// suggestions memoizes SuggestMany per input until the next Remember.
	suggestions = make(map[string][]string)
)

// Remember stores q or raises its rank by weight.
func Remember(q string, weight int) error {
	q = normalize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records, expired, err := history.Get()
	if expired || err != nil || records == nil {
		records = make(map[string]*record)
	}

	if r, ok := records[q]; ok {
		r.Rank += weight
	} else {
		records[q] = &record{Rank: weight, Query: q}
	}

	clear(suggestions)
	return history.Set(records)
}

// Suggest returns the best remembered query for the partial input q.
func Suggest(q string) mo.Option[string] {
	many := SuggestMany(q)
	if len(many) == 0 {
		return mo.None[string]()
	}
	return mo.Some(many[0])
}

// SuggestMany returns remembered queries that fuzzy-match q, highest rank first.
// Exact repeats of q are left out.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return nil
	}

	q = normalize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if prev, ok := suggestions[q]; ok {
		return prev
	}

	records, expired, err := history.Get()
	if err != nil || expired || records == nil {
		return nil
	}

	matched := lo.Filter(lo.Values(records), func(r *record, _ int) bool {
		return r.Query != q && fuzzy.Match(q, r.Query)
	})

	slices.SortFunc(matched, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})

	result := lo.Map(matched, func(r *record, _ int) string {
		return r.Query
	})
	suggestions[q] = result
	return result
}

func normalize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
