package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/epilist-cli/epilist/api"
	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/search"
	"github.com/epilist-cli/epilist/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Picker narrows the episodes that are written.
type Picker func([]*episode.Episode) []*episode.Episode

type Options struct {
	Out    io.Writer
	Source api.Source
	// Page is listed when Query is empty.
	Page  int
	Query string
	Json  bool
	Pick  mo.Option[Picker]
}

// ParsePicker parses an episode selector:
//
//	first, last, all
//	[n]           index, starting from 0
//	[from]-[to]   inclusive index range
//	S[n]          every episode of season n
//	@[pattern]@   episodes whose name matches pattern
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "first":
		return func(episodes []*episode.Episode) []*episode.Episode {
			return lo.Slice(episodes, 0, 1)
		}, nil
	case "last":
		return func(episodes []*episode.Episode) []*episode.Episode {
			return lo.Slice(episodes, len(episodes)-1, len(episodes))
		}, nil
	case "all":
		return func(episodes []*episode.Episode) []*episode.Episode {
			return episodes
		}, nil
	}

	if len(description) > 2 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		m := search.Compile(description[1 : len(description)-1])
		return func(episodes []*episode.Episode) []*episode.Episode {
			return search.Filter(episodes, m)
		}, nil
	}

	if rest, ok := strings.CutPrefix(strings.ToUpper(description), "S"); ok {
		if season, err := strconv.Atoi(rest); err == nil {
			return func(episodes []*episode.Episode) []*episode.Episode {
				return lo.Filter(episodes, func(e *episode.Episode, _ int) bool {
					return e.Season() == season
				})
			}, nil
		}
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.ParseUint(from, 10, 16)
		end, err2 := strconv.ParseUint(to, 10, 16)
		if err1 == nil && err2 == nil {
			return func(episodes []*episode.Episode) []*episode.Episode {
				n := len(episodes)
				i, j := util.Clamp(int(start), 0, n), util.Clamp(int(end)+1, 0, n)
				if i > j {
					return nil
				}
				return episodes[i:j]
			}, nil
		}
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(episodes []*episode.Episode) []*episode.Episode {
			if uint64(len(episodes)) <= idx {
				return nil
			}
			return episodes[idx : idx+1]
		}, nil
	}

	return nil, fmt.Errorf("invalid episode selector: %s", description)
}
