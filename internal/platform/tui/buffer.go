package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Buffer is a Display that draws into an off-screen Screen. Flush renders
// the screen to the string Bubble Tea shows on the next View.
type Buffer struct {
	screen   *core.Screen
	renderer *lipgloss.Renderer
	x, y     int
	view     string
}

// NewBuffer creates a buffer of width columns and height rows.
func NewBuffer(width, height int, r *lipgloss.Renderer) *Buffer {
	return &Buffer{
		screen:   core.NewScreen(width, height),
		renderer: r,
	}
}

func (b *Buffer) Clear() {
	b.screen.Clear()
}

func (b *Buffer) MoveTo(x, y int) {
	b.x, b.y = x, y
}

func (b *Buffer) WriteStyled(text string, fg, bg core.Color) {
	b.screen.DrawText(b.x, b.y, text, fg, bg)
	b.x += len([]rune(text))
}

func (b *Buffer) Flush() error {
	b.view = RenderScreen(b.renderer, b.screen)
	return nil
}

// View returns the last flushed frame.
func (b *Buffer) View() string {
	return b.view
}

// Screen exposes the drawing surface.
func (b *Buffer) Screen() *core.Screen {
	return b.screen
}

// Queue is an Input fed by Bubble Tea key messages. Poll never blocks:
// the program's own tick already paces the loop.
type Queue struct {
	events []core.KeyEvent
}

// Push appends a key event.
func (q *Queue) Push(ev core.KeyEvent) {
	q.events = append(q.events, ev)
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}

func (q *Queue) Poll(time.Duration) (bool, error) {
	return len(q.events) > 0, nil
}

func (q *Queue) Read() (core.KeyEvent, error) {
	if len(q.events) == 0 {
		return core.KeyEvent{}, nil
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, nil
}
