package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/epilist-cli/epilist/api"
	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/internal/ui"
	"github.com/epilist-cli/epilist/key"
	"github.com/epilist-cli/epilist/search"
	"github.com/epilist-cli/epilist/store"
	"github.com/epilist-cli/epilist/style"
	"github.com/epilist-cli/epilist/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	spinnerC   spinner.Model
	inputC     textinput.Model
	episodesC  list.Model
	favoritesC list.Model
	paginatorC paginator.Model
	helpC      help.Model

	source   api.Source
	searcher search.Searcher
	store    *store.Store

	// page is the page currently requested or shown.
	page    int
	loading bool
	// loaded is set once the first page arrived.
	loaded bool

	// searchSeq increments on every change of the search text. Only the
	// latest search may update matches.
	searchSeq   int
	searching   bool
	activeQuery string
	matches     []*episode.Episode
	debounce    time.Duration

	detailID      int
	detail        *episode.Episode
	detailLoading bool

	lastError error

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// the search input is a mode of the list, not a screen to return to
	if b.state != searchState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if prev, ok := b.statesHistory.Pop(); ok {
		b.setState(prev)
	}
}

// searchActive reports whether the list shows search matches instead of the current page.
func (b *statefulBubble) searchActive() bool {
	return strings.TrimSpace(b.inputC.Value()) != ""
}

// reservedLines is the number of lines around the list: title, input, paginator, banner and help.
const reservedLines = 7

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := max(height-yy-reservedLines, 1)

	b.episodesC.SetSize(listWidth, listHeight)
	b.favoritesC.SetSize(listWidth, height-yy)
	b.favoritesC.Help.Width = listWidth

	b.inputC.Width = max(listWidth-lipgloss.Width(b.inputC.Prompt)-1, 1)

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		source:        options.Source,
		searcher:      search.Searcher{Source: options.Source},
		store:         options.Store,
		page:          max(options.Page, 1),
		debounce:      time.Duration(viper.GetInt(key.SearchDebounceMs)) * time.Millisecond,
		notifier:      &ui.Model{},
	}

	if bubble.store == nil {
		bubble.store = store.New()
	}

	makeList := func(title string, background lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(background).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.SetFilteringEnabled(false)
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)
		listC.SetStatusBarItemName("episode", "episodes")

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.Pink)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Search episodes by name"
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)
	bubble.inputC.SetValue(options.Query)

	bubble.episodesC = makeList("Episodes", style.AccentColor)
	bubble.episodesC.SetShowTitle(false)
	bubble.episodesC.SetShowHelp(false)

	bubble.favoritesC = makeList("Favorites", style.FavoriteColor)

	bubble.paginatorC = paginator.New()
	bubble.paginatorC.Type = paginator.Arabic
	bubble.paginatorC.Page = bubble.page - 1

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(listState)
	return &bubble
}

// refreshEpisodes rebuilds the main list from the search matches or the stored page.
func (b *statefulBubble) refreshEpisodes() tea.Cmd {
	episodes := b.store.State().Episodes
	if b.searchActive() {
		episodes = b.matches
	}

	return b.episodesC.SetItems(b.toItems(episodes))
}

func (b *statefulBubble) refreshFavorites() tea.Cmd {
	return b.favoritesC.SetItems(b.toItems(b.store.State().Favorites))
}

func (b *statefulBubble) toItems(episodes []*episode.Episode) []list.Item {
	return lo.Map(episodes, func(e *episode.Episode, _ int) list.Item {
		return &listItem{internal: e, marked: b.store.IsFavorite(e.ID)}
	})
}

func (b *statefulBubble) selectedEpisode(l *list.Model) (*episode.Episode, bool) {
	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return nil, false
	}
	return item.episode()
}

func (b *statefulBubble) totalPages() int {
	return b.store.State().Info.Pages
}

func (b *statefulBubble) pageStatus() string {
	if total := b.totalPages(); total > 0 {
		return fmt.Sprintf("page %d of %d", b.page, total)
	}
	return fmt.Sprintf("page %d", b.page)
}
