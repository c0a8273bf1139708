package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/epilist-cli/epilist/color"
	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/icon"
	"github.com/epilist-cli/epilist/style"
	"github.com/epilist-cli/epilist/util"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case listState, searchState:
		output = b.viewList()
	case detailState:
		output = b.viewDetail()
	case favoritesState:
		output = b.viewFavorites()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Episodes"),
			"",
			b.spinnerC.View() + " " + fmt.Sprintf("Fetching %s", b.pageStatus()),
		},
	)
}

func (b *statefulBubble) viewList() string {
	if b.loading || (!b.loaded && b.lastError == nil) {
		return b.viewLoading()
	}

	header := style.Title("Episodes")
	if b.searchActive() {
		header += " " + style.Faint(util.Quantify(len(b.matches), "match", "matches"))
	} else {
		header += " " + style.Faint(b.pageStatus())
	}

	input := b.inputC.View()
	if b.searching {
		input += " " + b.spinnerC.View()
	} else if suggestion, ok := b.searchSuggestion.Get(); ok && b.state == searchState {
		input += " " + style.Faint(icon.Get(icon.Search)+" "+suggestion)
	}

	lines := []string{
		header,
		input,
		"",
		b.episodesC.View(),
	}

	// pagination only applies to the page listing
	if !b.searchActive() {
		lines = append(lines, style.Faint(b.paginatorC.View()))
	}

	if b.lastError != nil {
		lines = append(lines, b.viewBanner(b.lastError))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewBanner(err error) string {
	text := fmt.Sprintf("%s %s", icon.Get(icon.Fail), err.Error())
	if b.width > 0 {
		text = wrap.String(text, b.width)
	}
	return style.Fg(style.ErrorColor)(text)
}

func (b *statefulBubble) viewDetail() string {
	if b.detailLoading || b.detail == nil {
		return b.renderLines(
			true,
			[]string{
				style.Title("Episode"),
				"",
				b.spinnerC.View() + " " + fmt.Sprintf("Fetching episode #%d", b.detailID),
			},
		)
	}

	e := b.detail
	title := e.Name
	if b.store.IsFavorite(e.ID) {
		title += " " + style.Fg(style.FavoriteColor)(icon.Get(icon.Favorite))
	}

	field := func(name, value string) string {
		return fmt.Sprintf("%s %s", style.Faint(fmt.Sprintf("%-11s", name)), value)
	}

	lines := []string{
		style.Title("Episode"),
		"",
		style.Truncate(b.width)(style.Bold(style.Fg(color.Purple)(title))),
		"",
		field("Episode", episode.FormatCode(e.Code)),
		field("Air date", e.AirDate),
		field("Characters", util.Quantify(len(e.Characters), "character", "characters")),
		field("URL", icon.Get(icon.Link)+" "+style.Truncate(b.width)(e.URL)),
		field("Route", e.DetailRoute()),
	}

	if !e.Created.IsZero() {
		lines = append(lines, field("Created", e.Created.Format("2006-01-02")))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewFavorites() string {
	return listExtraPaddingStyle.Render(b.favoritesC.View())
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := lipgloss.Height(strings.Join(lines, "\n"))
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
