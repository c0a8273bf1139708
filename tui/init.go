package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	cmds := []tea.Cmd{b.spinnerC.Tick, b.fetchPage(b.page)}

	if b.searchActive() {
		b.searchSeq++
		cmds = append(cmds, b.runSearch(b.searchSeq))
	}

	return tea.Batch(cmds...)
}
