package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/icon"
	"github.com/epilist-cli/epilist/key"
	"github.com/epilist-cli/epilist/style"
	"github.com/spf13/viper"
)

// listItem implements list.Item. marked means the episode is a favorite.
type listItem struct {
	internal any
	marked   bool
}

func (t *listItem) episode() (*episode.Episode, bool) {
	e, ok := t.internal.(*episode.Episode)
	return e, ok
}

func (t *listItem) getMark() string {
	switch t.internal.(type) {
	case *episode.Episode:
		return lipgloss.NewStyle().Bold(true).Foreground(style.FavoriteColor).Render(icon.Get(icon.Favorite))
	default:
		return ""
	}
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *episode.Episode:
		title = fmt.Sprintf("%s %s", style.Faint(fmt.Sprintf("#%d", e.ID)), e.Name)
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}

	return
}

func (t *listItem) Description() string {
	e, ok := t.episode()
	if !ok {
		return ""
	}

	parts := []string{episode.FormatCode(e.Code)}
	if e.AirDate != "" {
		parts = append(parts, e.AirDate)
	}
	if viper.GetBool(key.TUIShowURLs) && e.URL != "" {
		parts = append(parts, style.Fg(style.FaintColor)(e.URL))
	}

	return strings.Join(parts, " • ")
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *episode.Episode:
		return e.Name
	case string:
		return e
	default:
		return ""
	}
}
