// Package tui is the interactive episode list.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/epilist-cli/epilist/api"
	"github.com/epilist-cli/epilist/store"
)

// Options configures the interactive view.
type Options struct {
	// Page is the page shown first. Values below 1 mean 1.
	Page int
	// Query pre-fills the search input.
	Query  string
	Source api.Source
	Store  *store.Store
}

// Run starts the program and blocks until the user quits.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
