// Package tui hosts the snake engine inside a Bubble Tea program, locally
// or per SSH session through Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one engine iteration.
type TickMsg time.Time

// tickCmd schedules the next tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickNow triggers an iteration immediately.
func tickNow() tea.Msg {
	return TickMsg(time.Now())
}
