package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Cell styles for each kind of board element.
var (
	CollectibleCell = core.Cell{Rune: '⊕', Fg: core.ColorGreen, Bg: core.ColorGreen}
	EvenBodyCell    = core.Cell{Rune: ' ', Fg: core.ColorBlack, Bg: core.ColorRed}
	OddBodyCell     = core.Cell{Rune: ' ', Fg: core.ColorRed, Bg: core.ColorBlack}
	HeadCell        = core.Cell{Rune: 'O', Fg: core.ColorRed, Bg: core.ColorRed}
)

// NewFrame allocates a screen sized to the world's grid, one cell per
// grid position.
func NewFrame(w *World) *core.Screen {
	return core.NewScreen(w.Bounds.Width(), w.Bounds.Height())
}

// Render draws the world into dst. Collectibles go down first, then the
// body from neck to tail, then the head on top. It reads the world only.
func Render(w *World, dst *core.Screen) {
	dst.Clear()

	for _, c := range w.Collectibles {
		if c.Active {
			dst.SetCell(c.X, c.Y, CollectibleCell)
		}
	}

	for i := 1; i < len(w.Snake.Body); i++ {
		seg := w.Snake.Body[i]
		cell := EvenBodyCell
		if i%2 != 0 {
			cell = OddBodyCell
		}
		dst.SetCell(seg.X, seg.Y, cell)
	}

	head := w.Snake.Head()
	dst.SetCell(head.X, head.Y, HeadCell)
}
