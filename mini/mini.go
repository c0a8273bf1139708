// Package mini is a prompt-driven mode for terminals where the full screen view is unwanted.
package mini

import (
	"context"
	"io"
	"os"

	"github.com/epilist-cli/epilist/api"
	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/search"
	"github.com/epilist-cli/epilist/store"
	"github.com/epilist-cli/epilist/util"
)

type Options struct {
	Source api.Source
	Store  *store.Store
	Page   int
	Out    io.Writer
}

type mini struct {
	state         state
	statesHistory util.Stack[state]

	ctx      context.Context
	source   api.Source
	searcher search.Searcher
	store    *store.Store
	prompt   prompter
	out      io.Writer

	page     int
	query    string
	results  []*episode.Episode
	selected *episode.Episode
}

func newMini(ctx context.Context, options *Options, p prompter) *mini {
	m := &mini{
		statesHistory: util.Stack[state]{},
		ctx:           ctx,
		source:        options.Source,
		searcher:      search.Searcher{Source: options.Source},
		store:         options.Store,
		prompt:        p,
		out:           options.Out,
		page:          max(options.Page, 1),
		state:         pageState,
	}

	if m.store == nil {
		m.store = store.New()
	}
	if m.out == nil {
		m.out = os.Stdout
	}

	return m
}

func (m *mini) previousState() {
	if prev, ok := m.statesHistory.Pop(); ok {
		m.setState(prev)
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	// input prompts are not revisited on back
	if m.state != searchState {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run prompts until the user quits.
func Run(ctx context.Context, options *Options) error {
	pageSize := 10
	if _, h, err := util.TerminalSize(); err == nil {
		pageSize = max(h-4, 5)
	}

	return newMini(ctx, options, surveyPrompter{pageSize: pageSize}).loop()
}

func (m *mini) loop() error {
	for m.state != quitState {
		if err := m.handleState(); err != nil {
			return err
		}
	}
	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case pageState:
		return m.handlePageState()
	case searchState:
		return m.handleSearchState()
	case resultsState:
		return m.handleResultsState()
	case favoritesState:
		return m.handleFavoritesState()
	case episodeState:
		return m.handleEpisodeState()
	}

	return nil
}
