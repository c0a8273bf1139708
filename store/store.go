// Package store holds the process-wide episode state.
//
// State only changes through Dispatch, and every change is computed by Reduce.
package store

import (
	"sync"

	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/log"
	"github.com/samber/lo"
)

// Kind names an action.
type Kind int

const (
	FetchEpisodes Kind = iota + 1
	AddToFavorites
	RemoveFromFavorites
)

func (k Kind) String() string {
	switch k {
	case FetchEpisodes:
		return "FETCH_EPISODES"
	case AddToFavorites:
		return "ADD_TO_FAVORITES"
	case RemoveFromFavorites:
		return "REMOVE_FROM_FAVORITES"
	default:
		return "UNKNOWN"
	}
}

// Action is a single state transition request.
// FetchEpisodes uses Episodes and Info, the favorite actions use Episode.
type Action struct {
	Kind     Kind
	Episodes []*episode.Episode
	Info     episode.Info
	Episode  *episode.Episode
}

// Fetched builds a FetchEpisodes action from a page.
func Fetched(page *episode.Page) Action {
	return Action{Kind: FetchEpisodes, Episodes: page.Results, Info: page.Info}
}

// State is the shared data visible to every view.
type State struct {
	Episodes  []*episode.Episode
	Info      episode.Info
	Favorites []*episode.Episode
}

// IsFavorite reports whether an episode with id is in the favorites.
func (s State) IsFavorite(id int) bool {
	return lo.ContainsBy(s.Favorites, func(e *episode.Episode) bool {
		return e.ID == id
	})
}

// Reduce returns the state that results from applying a to s. It never mutates s.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case FetchEpisodes:
		s.Episodes = append([]*episode.Episode(nil), a.Episodes...)
		s.Info = a.Info
	case AddToFavorites:
		if a.Episode == nil || s.IsFavorite(a.Episode.ID) {
			return s
		}
		favorites := make([]*episode.Episode, len(s.Favorites), len(s.Favorites)+1)
		copy(favorites, s.Favorites)
		s.Favorites = append(favorites, a.Episode)
	case RemoveFromFavorites:
		if a.Episode == nil || !s.IsFavorite(a.Episode.ID) {
			return s
		}
		s.Favorites = lo.Filter(s.Favorites, func(e *episode.Episode, _ int) bool {
			return e.ID != a.Episode.ID
		})
	}

	return s
}

// Store serializes dispatches and hands out snapshots.
type Store struct {
	mu    sync.RWMutex
	state State
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Dispatch applies a to the current state.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, a)

	fields := log.Fields{"action": a.Kind.String(), "favorites": len(s.state.Favorites)}
	if a.Episode != nil {
		fields["episode"] = a.Episode.ID
	}
	if a.Kind == FetchEpisodes {
		fields["episodes"] = len(a.Episodes)
	}
	log.With(fields).Debug("dispatch")
}

// State returns a snapshot. Slices in the snapshot are not shared with later states.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Episodes:  append([]*episode.Episode(nil), s.state.Episodes...),
		Info:      s.state.Info,
		Favorites: append([]*episode.Episode(nil), s.state.Favorites...),
	}
}

// IsFavorite reports whether the episode with id is a favorite.
func (s *Store) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.IsFavorite(id)
}

// ToggleFavorite adds ep to the favorites or removes it, and reports whether it is now a favorite.
func (s *Store) ToggleFavorite(ep *episode.Episode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind := AddToFavorites
	if s.state.IsFavorite(ep.ID) {
		kind = RemoveFromFavorites
	}

	s.state = Reduce(s.state, Action{Kind: kind, Episode: ep})
	log.With(log.Fields{"action": kind.String(), "episode": ep.ID}).Debug("dispatch")

	return kind == AddToFavorites
}
