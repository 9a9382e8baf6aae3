// Package ansi hosts the game on a plain byte stream: escape sequences out,
// raw key bytes in. It needs no terminfo and works on any writer.
package ansi

import (
	"bytes"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Display buffers cursor movement and styled text, and writes the whole
// frame in a single Write on Flush.
type Display struct {
	w        io.Writer
	buf      bytes.Buffer
	out      *termenv.Output
	renderer *lipgloss.Renderer
	styles   map[[2]core.Color]lipgloss.Style
}

// NewDisplay creates a display writing to w with the given color profile.
func NewDisplay(w io.Writer, profile termenv.Profile) *Display {
	d := &Display{
		w:      w,
		styles: make(map[[2]core.Color]lipgloss.Style),
	}
	d.out = termenv.NewOutput(&d.buf, termenv.WithProfile(profile))
	d.renderer = lipgloss.NewRenderer(&d.buf)
	d.renderer.SetColorProfile(profile)
	return d
}

// Begin switches to the alternate screen and hides the cursor.
func (d *Display) Begin() error {
	d.out.AltScreen()
	d.out.HideCursor()
	return d.Flush()
}

// End restores the cursor and the main screen.
func (d *Display) End() error {
	d.out.Reset()
	d.out.ShowCursor()
	d.out.ExitAltScreen()
	return d.Flush()
}

func (d *Display) Clear() {
	d.out.ClearScreen()
}

// MoveTo places the cursor at zero-based column x, row y.
func (d *Display) MoveTo(x, y int) {
	d.out.MoveCursor(y+1, x+1)
}

func (d *Display) WriteStyled(text string, fg, bg core.Color) {
	d.buf.WriteString(d.style(fg, bg).Render(text))
}

// Flush writes everything buffered since the last Flush.
func (d *Display) Flush() error {
	if d.buf.Len() == 0 {
		return nil
	}
	_, err := d.w.Write(d.buf.Bytes())
	d.buf.Reset()
	return err
}

func (d *Display) style(fg, bg core.Color) lipgloss.Style {
	key := [2]core.Color{fg, bg}
	if st, ok := d.styles[key]; ok {
		return st
	}
	st := d.renderer.NewStyle().Foreground(Color(fg)).Background(Color(bg))
	d.styles[key] = st
	return st
}

// Color maps a palette color to a lipgloss color.
func Color(c core.Color) lipgloss.TerminalColor {
	if n := c.ANSI(); n >= 0 {
		return lipgloss.Color(strconv.Itoa(n))
	}
	return lipgloss.NoColor{}
}
