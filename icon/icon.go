// Package icon renders UI symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/epilist-cli/epilist/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported variant name.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Favorite
	Search
	Link
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💀", nerd: "", plain: "X", kaomoji: "(×_×)", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・_・)", squares: "🟦"},
	Favorite: {emoji: "❤️", nerd: "", plain: "*", kaomoji: "(♥‿♥)", squares: "🟪"},
	Search:   {emoji: "🔍", nerd: "", plain: "?", kaomoji: "(⊙_⊙)", squares: "🟨"},
	Link:     {emoji: "🔗", nerd: "", plain: "->", kaomoji: "(ー_ー)→", squares: "🟫"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
