// Package ui holds the ephemeral notification line shared by the terminal views.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/geniuskouta/nakano-yt-2000/icon"
	"github.com/geniuskouta/nakano-yt-2000/style"
)

// Lifetime is how long a notice stays on screen.
const Lifetime = 3 * time.Second

// Level ranks a notice.
type Level int

const (
	Info Level = iota
	Warning
	Failure
)

// NoticeMsg asks the notifier to show Text.
type NoticeMsg struct {
	Text  string
	Level Level
}

// ClearNotificationMsg clears the notice with the same sequence number.
type ClearNotificationMsg struct {
	seq int
}

// Model is a single line of transient notifications.
type Model struct {
	notification string
	level        Level
	notifiedAt   time.Time
	seq          int
}

// Notify returns a tea.Cmd showing text at level.
func Notify(level Level, text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text, Level: level}
	}
}

// ClearNotification returns a delayed tea.Cmd that clears notice seq after Lifetime.
func ClearNotification(seq int) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{seq: seq}
	})
}

// Update processes notifier messages. A clear only applies to the notice it was scheduled for.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NoticeMsg:
		m.notification = msg.Text
		m.level = msg.Level
		m.notifiedAt = time.Now()
		m.seq++
		return ClearNotification(m.seq)
	case ClearNotificationMsg:
		if msg.seq == m.seq {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the visible notice, or an empty string.
func (m *Model) Current() string {
	return m.notification
}

// View appends the current notice to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	var notice string
	switch m.level {
	case Failure:
		notice = icon.Get(icon.Fail) + " " + style.Fg(style.ErrorColor)(m.notification)
	case Warning:
		notice = icon.Get(icon.Warn) + " " + style.Fg(style.WarningColor)(m.notification)
	default:
		notice = style.Faint(m.notification)
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] = lines[len(lines)-1] + "  " + notice
	return strings.Join(lines, "\n")
}
