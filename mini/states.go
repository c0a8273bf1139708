package mini

import (
	"fmt"
	"strings"

	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/icon"
	"github.com/epilist-cli/epilist/log"
	"github.com/epilist-cli/epilist/open"
	"github.com/epilist-cli/epilist/query"
	"github.com/epilist-cli/epilist/store"
	"github.com/epilist-cli/epilist/util"
	"github.com/samber/lo"
)

type state int

const (
	pageState state = iota + 1
	searchState
	resultsState
	favoritesState
	episodeState
	quitState
)

type action string

const (
	nextPage       action = "Next page"
	prevPage       action = "Previous page"
	searchAction   action = "Search"
	favorites      action = "Favorites"
	back           action = "Back"
	quit           action = "Quit"
	toggleFavorite action = "Toggle favorite"
	openBrowser    action = "Open in browser"
)

// choose shows episodes followed by actions and returns either the chosen episode or the chosen action.
func (m *mini) choose(message string, episodes []*episode.Episode, actions ...action) (*episode.Episode, action, error) {
	options := lo.Map(episodes, func(e *episode.Episode, _ int) string {
		return m.label(e)
	})
	for _, a := range actions {
		options = append(options, string(a))
	}

	i, err := m.prompt.Select(message, options)
	if err != nil {
		return nil, "", err
	}

	if i < len(episodes) {
		return episodes[i], "", nil
	}
	return nil, actions[i-len(episodes)], nil
}

func (m *mini) label(e *episode.Episode) string {
	l := fmt.Sprintf("%s  %s", e.Code, e.Name)
	if m.store.IsFavorite(e.ID) {
		l += " " + icon.Get(icon.Favorite)
	}
	return l
}

func (m *mini) handlePageState() error {
	erase := progress(m.out, fmt.Sprintf("Fetching page %d..", m.page))
	page, err := m.source.FetchPage(m.ctx, m.page)
	erase()
	if err != nil {
		return err
	}

	m.store.Dispatch(store.Fetched(page))

	var actions []action
	if m.page < page.Info.Pages {
		actions = append(actions, nextPage)
	}
	if m.page > 1 {
		actions = append(actions, prevPage)
	}
	actions = append(actions, searchAction, favorites, quit)

	e, a, err := m.choose(fmt.Sprintf("Page %d of %d", m.page, page.Info.Pages), page.Results, actions...)
	if err != nil {
		return err
	}

	switch a {
	case nextPage:
		m.page++
	case prevPage:
		m.page--
	case searchAction:
		m.newState(searchState)
	case favorites:
		m.newState(favoritesState)
	case quit:
		m.newState(quitState)
	default:
		m.selected = e
		m.newState(episodeState)
	}

	return nil
}

func (m *mini) handleSearchState() error {
	in, err := m.prompt.Input("Search episodes (empty to go back)", query.SuggestMany)
	if err != nil {
		return err
	}

	if strings.TrimSpace(in) == "" {
		m.previousState()
		return nil
	}

	erase := progress(m.out, "Searching..")
	results, err := m.searcher.Search(m.ctx, in)
	erase()
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fail(m.out, "No episodes match")
		m.previousState()
		return nil
	}

	if err := query.Remember(in, 1); err != nil {
		log.Warnf("remember query %q: %v", in, err)
	}

	m.query = in
	m.results = results
	m.newState(resultsState)
	return nil
}

func (m *mini) handleResultsState() error {
	message := fmt.Sprintf("%s for %q", util.Quantify(len(m.results), "match", "matches"), m.query)
	e, a, err := m.choose(message, m.results, searchAction, back, quit)
	if err != nil {
		return err
	}

	switch a {
	case searchAction:
		m.newState(searchState)
	case back:
		m.previousState()
	case quit:
		m.newState(quitState)
	default:
		m.selected = e
		m.newState(episodeState)
	}

	return nil
}

func (m *mini) handleFavoritesState() error {
	favs := m.store.State().Favorites
	if len(favs) == 0 {
		fail(m.out, "No favorites yet")
		m.previousState()
		return nil
	}

	e, a, err := m.choose("Favorites", favs, back, quit)
	if err != nil {
		return err
	}

	switch a {
	case back:
		m.previousState()
	case quit:
		m.newState(quitState)
	default:
		m.selected = e
		m.newState(episodeState)
	}

	return nil
}

func (m *mini) handleEpisodeState() error {
	e := m.selected

	title(m.out, m.label(e))
	field(m.out, "Episode", episode.FormatCode(e.Code))
	field(m.out, "Air date", e.AirDate)
	field(m.out, "Characters", util.Quantify(len(e.Characters), "character", "characters"))
	field(m.out, "URL", e.URL)

	_, a, err := m.choose("Episode", nil, toggleFavorite, openBrowser, back)
	if err != nil {
		return err
	}

	switch a {
	case toggleFavorite:
		if m.store.ToggleFavorite(e) {
			success(m.out, "Added to favorites")
		} else {
			success(m.out, "Removed from favorites")
		}
	case openBrowser:
		if err := open.Start(e.URL); err != nil {
			fail(m.out, err.Error())
		}
	case back:
		m.previousState()
	}

	return nil
}
