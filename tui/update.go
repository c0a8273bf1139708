package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/internal/ui"
	"github.com/epilist-cli/epilist/log"
	"github.com/epilist-cli/epilist/query"
	"github.com/epilist-cli/epilist/store"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	notifierCmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, notifierCmd
	case spinner.TickMsg:
		if !b.loading && !b.searching && !b.detailLoading {
			return b, notifierCmd
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, tea.Batch(notifierCmd, cmd)
	case pageFetchedMsg:
		return b, tea.Batch(notifierCmd, b.onPageFetched(msg))
	case searchDueMsg:
		if msg.seq != b.searchSeq {
			return b, notifierCmd
		}
		return b, tea.Batch(notifierCmd, b.runSearch(msg.seq))
	case searchDoneMsg:
		return b, tea.Batch(notifierCmd, b.onSearchDone(msg))
	case episodeFetchedMsg:
		return b, tea.Batch(notifierCmd, b.onEpisodeFetched(msg))
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case listState:
		cmd = b.updateList(msg)
	case searchState:
		cmd = b.updateSearch(msg)
	case detailState:
		cmd = b.updateDetail(msg)
	case favoritesState:
		cmd = b.updateFavorites(msg)
	}

	return b, tea.Batch(notifierCmd, cmd)
}

func (b *statefulBubble) onPageFetched(msg pageFetchedMsg) tea.Cmd {
	if msg.page != b.page {
		log.Debugf("discarding stale page %d, showing %d", msg.page, b.page)
		return nil
	}

	b.loading = false
	if msg.err != nil {
		log.Error(msg.err)
		b.lastError = msg.err
		return nil
	}

	b.loaded = true
	b.store.Dispatch(store.Fetched(msg.result))
	b.paginatorC.TotalPages = max(msg.result.Info.Pages, 1)
	b.paginatorC.Page = b.page - 1

	if b.searchActive() {
		return nil
	}

	b.episodesC.ResetSelected()
	return b.refreshEpisodes()
}

func (b *statefulBubble) onSearchDone(msg searchDoneMsg) tea.Cmd {
	if msg.seq != b.searchSeq {
		log.Debugf("discarding stale search %q", msg.query)
		return nil
	}

	b.searching = false
	if msg.err != nil {
		log.Error(msg.err)
		b.lastError = msg.err
		return nil
	}

	b.lastError = nil
	b.activeQuery = msg.query
	b.matches = msg.matches
	b.episodesC.ResetSelected()
	return b.refreshEpisodes()
}

func (b *statefulBubble) onEpisodeFetched(msg episodeFetchedMsg) tea.Cmd {
	if msg.id != b.detailID || b.state != detailState {
		return nil
	}

	b.detailLoading = false
	if msg.err != nil {
		log.Error(msg.err)
		b.lastError = msg.err
		b.previousState()
		return nil
	}

	b.detail = msg.episode
	return nil
}

func (b *statefulBubble) toggle(ep *episode.Episode) tea.Cmd {
	text := "Removed from favorites"
	if b.store.ToggleFavorite(ep) {
		text = "Added to favorites"
	}
	return tea.Batch(b.refreshEpisodes(), ui.Notify(text))
}

func (b *statefulBubble) updateList(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return nil
		case bubblesKey.Matches(msg, b.keymap.search):
			b.newState(searchState)
			return b.inputC.Focus()
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.searchActive() {
				b.inputC.SetValue("")
				return b.queueSearch()
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.prevPage):
			if b.searchActive() {
				return nil
			}
			return b.setPage(b.page - 1)
		case bubblesKey.Matches(msg, b.keymap.nextPage):
			if b.searchActive() {
				return nil
			}
			return b.setPage(b.page + 1)
		case bubblesKey.Matches(msg, b.keymap.favorites):
			b.newState(favoritesState)
			b.favoritesC.ResetSelected()
			return b.refreshFavorites()
		case bubblesKey.Matches(msg, b.keymap.favorite):
			if ep, ok := b.selectedEpisode(&b.episodesC); ok {
				return b.toggle(ep)
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if ep, ok := b.selectedEpisode(&b.episodesC); ok {
				return openURL(ep.URL)
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.details):
			if ep, ok := b.selectedEpisode(&b.episodesC); ok {
				b.newState(detailState)
				return b.fetchEpisode(ep.ID)
			}
			return nil
		}
	}

	b.episodesC, cmd = b.episodesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.submit):
			b.inputC.Blur()
			b.previousState()
			if b.searchActive() {
				return rememberQuery(b.inputC.Value())
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.CursorEnd()
			return b.queueSearch()
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.searchActive() {
				b.inputC.SetValue("")
				b.searchSuggestion = mo.None[string]()
				return b.queueSearch()
			}
			b.inputC.Blur()
			b.previousState()
			return nil
		}
	}

	before := b.inputC.Value()
	b.inputC, cmd = b.inputC.Update(msg)
	if b.inputC.Value() == before {
		return cmd
	}

	b.updateSuggestion()
	return tea.Batch(cmd, b.queueSearch())
}

func (b *statefulBubble) updateSuggestion() {
	value := b.inputC.Value()
	if value == "" {
		b.searchSuggestion = mo.None[string]()
		return
	}

	if suggestion, ok := query.Suggest(value).Get(); ok && suggestion != value {
		b.searchSuggestion = mo.Some(suggestion)
	} else {
		b.searchSuggestion = mo.None[string]()
	}
}

func (b *statefulBubble) updateDetail(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.detailLoading = false
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.favorite) && b.detail != nil:
			return b.toggle(b.detail)
		case bubblesKey.Matches(msg, b.keymap.openURL) && b.detail != nil:
			return openURL(b.detail.URL)
		}
	}
	return nil
}

func (b *statefulBubble) updateFavorites(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b.refreshEpisodes()
		case bubblesKey.Matches(msg, b.keymap.favorite):
			if ep, ok := b.selectedEpisode(&b.favoritesC); ok {
				return tea.Batch(b.toggle(ep), b.refreshFavorites())
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if ep, ok := b.selectedEpisode(&b.favoritesC); ok {
				return openURL(ep.URL)
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.details):
			if ep, ok := b.selectedEpisode(&b.favoritesC); ok {
				b.newState(detailState)
				return b.fetchEpisode(ep.ID)
			}
			return nil
		}
	}

	b.favoritesC, cmd = b.favoritesC.Update(msg)
	return cmd
}
