package ansi

import (
	"errors"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not a terminal.
var ErrNotTerminal = errors.New("ansi: stdin is not a terminal")

// Local is the process's own terminal in raw mode.
type Local struct {
	display *Display
	input   *Input
	width   int
	height  int
	inFd    int
	state   *term.State
}

// OpenLocal puts stdin into raw mode and prepares stdout for drawing.
func OpenLocal() (*Local, error) {
	inFd := int(os.Stdin.Fd())
	if !term.IsTerminal(inFd) {
		return nil, ErrNotTerminal
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return nil, fmt.Errorf("ansi: terminal size: %w", err)
	}

	state, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("ansi: raw mode: %w", err)
	}

	l := &Local{
		display: NewDisplay(os.Stdout, termenv.EnvColorProfile()),
		input:   NewInput(os.Stdin),
		width:   width,
		height:  height,
		inFd:    inFd,
		state:   state,
	}
	if err := l.display.Begin(); err != nil {
		term.Restore(inFd, state)
		return nil, err
	}
	return l, nil
}

// Size returns the terminal size captured at open.
func (l *Local) Size() (int, int) {
	return l.width, l.height
}

func (l *Local) Display() *Display {
	return l.display
}

func (l *Local) Input() *Input {
	return l.input
}

// Close restores the screen and the terminal mode.
func (l *Local) Close() error {
	endErr := l.display.End()
	if err := term.Restore(l.inFd, l.state); err != nil {
		return fmt.Errorf("ansi: restore terminal: %w", err)
	}
	return endErr
}
