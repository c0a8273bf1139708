package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/epilist-cli/epilist/internal/ui"
	"github.com/epilist-cli/epilist/log"
	"github.com/epilist-cli/epilist/open"
	"github.com/epilist-cli/epilist/query"
	"github.com/epilist-cli/epilist/util"
)

// setPage requests page n. Pages beyond the known total are clamped.
func (b *statefulBubble) setPage(n int) tea.Cmd {
	if total := b.totalPages(); total > 0 {
		n = util.Clamp(n, 1, total)
	}
	n = max(n, 1)

	if n == b.page && b.lastError == nil {
		return nil
	}

	b.page = n
	b.paginatorC.Page = n - 1
	return tea.Batch(b.spinnerC.Tick, b.fetchPage(n))
}

func (b *statefulBubble) fetchPage(page int) tea.Cmd {
	b.loading = true
	b.lastError = nil
	source := b.source

	return func() tea.Msg {
		result, err := source.FetchPage(context.Background(), page)
		return pageFetchedMsg{page: page, result: result, err: err}
	}
}

// queueSearch records a change of the search text and schedules the search after the debounce.
func (b *statefulBubble) queueSearch() tea.Cmd {
	b.searchSeq++
	seq := b.searchSeq

	if !b.searchActive() {
		b.activeQuery = ""
		b.matches = nil
		b.searching = false
		return b.refreshEpisodes()
	}

	if b.debounce <= 0 {
		return b.runSearch(seq)
	}

	return tea.Tick(b.debounce, func(time.Time) tea.Msg {
		return searchDueMsg{seq: seq}
	})
}

func (b *statefulBubble) runSearch(seq int) tea.Cmd {
	q := b.inputC.Value()
	b.searching = true
	searcher := b.searcher

	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		matches, err := searcher.Search(context.Background(), q)
		return searchDoneMsg{seq: seq, query: q, matches: matches, err: err}
	})
}

func (b *statefulBubble) fetchEpisode(id int) tea.Cmd {
	b.detailID = id
	b.detail = nil
	b.detailLoading = true
	source := b.source

	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		ep, err := source.Episode(context.Background(), id)
		return episodeFetchedMsg{id: id, episode: ep, err: err}
	})
}

func rememberQuery(q string) tea.Cmd {
	return func() tea.Msg {
		if err := query.Remember(q, 1); err != nil {
			log.Warnf("remember query %q: %v", q, err)
		}
		return nil
	}
}

func openURL(url string) tea.Cmd {
	if err := open.Start(url); err != nil {
		log.Error(err)
		return ui.NotifyError(err.Error())
	}
	return ui.Notify("Opened in browser")
}
