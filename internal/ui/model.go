// Package ui shows short-lived status messages under a view.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/epilist-cli/epilist/style"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 3 * time.Second

// NotificationMsg asks the model to show Text.
type NotificationMsg struct {
	Text  string
	Error bool
}

type clearMsg struct {
	id int
}

// Model holds the current notification.
type Model struct {
	text    string
	isError bool
	// id makes an older clear tick a no-op once a newer notification arrived.
	id int
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg{Text: text}
	}
}

// NotifyError returns a command that shows text styled as an error.
func NotifyError(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg{Text: text, Error: true}
	}
}

// Update handles notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.id++
		m.text = msg.Text
		m.isError = msg.Error
		id := m.id
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return clearMsg{id: id}
		})
	case clearMsg:
		if msg.id == m.id {
			m.text = ""
		}
	}
	return nil
}

// Text returns the visible notification, if any.
func (m *Model) Text() string {
	return m.text
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.text == "" {
		return content
	}

	render := style.Faint
	if m.isError {
		render = style.ErrorTitle
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + render(m.text)
	return strings.Join(lines, "\n")
}
