// Package tcellterm hosts the game on a tcell screen.
package tcellterm

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrClosed is returned by Input once the screen has been finalized.
var ErrClosed = errors.New("tcellterm: screen closed")

// surface is the part of tcell.Screen the display draws through.
type surface interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Session owns an initialized tcell screen.
type Session struct {
	screen  tcell.Screen
	display *Display
	input   *Input
}

// Open initializes the terminal and starts reading events.
func Open() (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellterm: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellterm: init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	return &Session{
		screen:  screen,
		display: NewDisplay(screen),
		input:   NewInput(events, screen.Sync),
	}, nil
}

// Size returns the terminal size in columns and rows.
func (s *Session) Size() (int, int) {
	return s.screen.Size()
}

// Display returns the drawing surface.
func (s *Session) Display() *Display {
	return s.display
}

// Input returns the key source.
func (s *Session) Input() *Input {
	return s.input
}

// Close restores the terminal.
func (s *Session) Close() {
	s.screen.Fini()
}

// Display draws styled text on a tcell screen.
type Display struct {
	screen surface
	x, y   int
}

// NewDisplay wraps a tcell screen.
func NewDisplay(screen surface) *Display {
	return &Display{screen: screen}
}

func (d *Display) Clear() {
	d.screen.Clear()
}

func (d *Display) MoveTo(x, y int) {
	d.x, d.y = x, y
}

// WriteStyled puts text at the cursor and advances it by one column per rune.
func (d *Display) WriteStyled(text string, fg, bg core.Color) {
	st := Style(fg, bg)
	for _, r := range text {
		d.screen.SetContent(d.x, d.y, r, nil, st)
		d.x++
	}
}

func (d *Display) Flush() error {
	d.screen.Show()
	return nil
}

// Input turns tcell events into key events.
type Input struct {
	events  <-chan tcell.Event
	onSize  func()
	pending []core.KeyEvent
	closed  bool
}

// NewInput reads from events. onResize, if set, runs on every resize event.
func NewInput(events <-chan tcell.Event, onResize func()) *Input {
	return &Input{events: events, onSize: onResize}
}

// Poll waits up to timeout for a key event.
func (in *Input) Poll(timeout time.Duration) (bool, error) {
	if len(in.pending) > 0 {
		return true, nil
	}
	if in.closed {
		return false, ErrClosed
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				in.closed = true
				return false, ErrClosed
			}
			if in.accept(ev) {
				return true, nil
			}
		case <-timer.C:
			return false, nil
		}
	}
}

// Read returns the oldest buffered key event.
func (in *Input) Read() (core.KeyEvent, error) {
	if len(in.pending) == 0 {
		return core.KeyEvent{}, nil
	}
	ev := in.pending[0]
	in.pending = in.pending[1:]
	return ev, nil
}

func (in *Input) accept(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.pending = append(in.pending, TranslateKey(ev.Key(), ev.Rune()))
		return true
	case *tcell.EventResize:
		if in.onSize != nil {
			in.onSize()
		}
	}
	return false
}

// TranslateKey maps a tcell key and rune to a key event.
func TranslateKey(key tcell.Key, r rune) core.KeyEvent {
	switch key {
	case tcell.KeyRune:
		return core.RuneEvent(r)
	case tcell.KeyCtrlC:
		return core.KeyEvent{Key: core.KeyCtrlC}
	case tcell.KeyEscape:
		return core.KeyEvent{Key: core.KeyEscape}
	case tcell.KeyEnter:
		return core.KeyEvent{Key: core.KeyEnter}
	default:
		return core.KeyEvent{Key: core.KeyOther}
	}
}

// Color maps a palette color to tcell.
func Color(c core.Color) tcell.Color {
	if n := c.ANSI(); n >= 0 {
		return tcell.PaletteColor(n)
	}
	return tcell.ColorDefault
}

// Style builds a tcell style from a color pair.
func Style(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}
