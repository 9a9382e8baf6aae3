package engine

import "github.com/vovakirdan/tui-snake/internal/core"

// Present redraws the display from frame and flushes it as one frame.
// Each frame cell covers cellWidth adjacent columns so grid cells look
// roughly square. Blank cells are left to Clear.
func Present(d Display, frame *core.Screen, cellWidth int) error {
	if cellWidth < 1 {
		cellWidth = 1
	}
	d.Clear()
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			c := frame.GetCell(x, y)
			if c == core.BlankCell {
				continue
			}
			text := string(c.Rune)
			for i := 0; i < cellWidth; i++ {
				d.MoveTo(x*cellWidth+i, y)
				d.WriteStyled(text, c.Fg, c.Bg)
			}
		}
	}
	return d.Flush()
}
