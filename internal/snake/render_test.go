package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func renderWorld() *World {
	w := NewWorld(bounds10(), []Position{{5, 4}, {5, 5}, {6, 5}, {7, 5}}, Left, 2)
	w.Collectibles = []Collectible{
		{Position: Position{1, 1}, Active: true},
		{Position: Position{8, 8}, Active: false},
	}
	return w
}

func TestRenderCells(t *testing.T) {
	w := renderWorld()
	frame := NewFrame(w)
	Render(w, frame)

	if frame.Width() != 10 || frame.Height() != 10 {
		t.Fatalf("frame size = %dx%d, expected 10x10", frame.Width(), frame.Height())
	}

	tests := []struct {
		name     string
		x, y     int
		expected core.Cell
	}{
		{"head", 5, 4, HeadCell},
		{"odd body segment", 5, 5, OddBodyCell},
		{"even body segment", 6, 5, EvenBodyCell},
		{"odd tail segment", 7, 5, OddBodyCell},
		{"active collectible", 1, 1, CollectibleCell},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frame.GetCell(tc.x, tc.y); got != tc.expected {
				t.Errorf("cell (%d,%d) = %+v, expected %+v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if frame.Get(8, 8) != ' ' {
		t.Errorf("inactive collectible should not be drawn, got %q", frame.Get(8, 8))
	}
}

func TestRenderHeadOverCollectible(t *testing.T) {
	w := renderWorld()
	w.Collectibles[0].Position = w.Snake.Head()

	frame := NewFrame(w)
	Render(w, frame)

	head := w.Snake.Head()
	if frame.GetCell(head.X, head.Y) != HeadCell {
		t.Errorf("head should be drawn over a collectible, got %+v", frame.GetCell(head.X, head.Y))
	}
}

func TestRenderIdempotent(t *testing.T) {
	w := renderWorld()
	first := NewFrame(w)
	second := NewFrame(w)

	Render(w, first)
	Render(w, second)

	if !first.Equal(second) {
		t.Errorf("two renders of the same world differ:\n%s\n---\n%s", first, second)
	}
}

func TestRenderDoesNotMutateWorld(t *testing.T) {
	w := renderWorld()
	w.Collectibles[0].Position = w.Snake.Head()
	before := TakeSnapshot(w, 0)
	items := append([]Collectible(nil), w.Collectibles...)

	Render(w, NewFrame(w))

	if after := TakeSnapshot(w, 0); after != before {
		t.Errorf("render changed the world:\n%s\n%s", before, after)
	}
	for i := range items {
		if w.Collectibles[i] != items[i] {
			t.Errorf("collectible %d changed from %+v to %+v", i, items[i], w.Collectibles[i])
		}
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	w := renderWorld()
	frame := NewFrame(w)
	Render(w, frame)

	Step(w, zeroRandom())
	Render(w, frame)

	// The old tail cell is vacated after a constant-length step.
	if frame.Get(7, 5) != ' ' {
		t.Errorf("stale tail left in frame at (7,5): %q", frame.Get(7, 5))
	}
}
