// Package snake implements the wrapped-grid snake game: the world model,
// the per-tick update step, key mapping and frame rendering. It holds no
// terminal state; backends drive it through the engine package.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultCapacity is the number of collectibles kept on the board.
const DefaultCapacity = 4

// ErrDisplayTooSmall is returned when the display cannot fit the minimum grid.
var ErrDisplayTooSmall = errors.New("snake: display too small")

// Direction is the snake's heading.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
}

// Delta returns the unit step for the heading. Left and Right move along x,
// Up and Down along y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	}
	panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Position is a grid cell.
type Position struct {
	X, Y int
}

// Bounds holds the largest valid coordinate on each axis. The grid is
// (MaxX+1) x (MaxY+1) cells and wraps on both axes.
type Bounds struct {
	MaxX, MaxY int
}

// Width returns the number of columns.
func (b Bounds) Width() int { return b.MaxX + 1 }

// Height returns the number of rows.
func (b Bounds) Height() int { return b.MaxY + 1 }

// Contains reports whether p lies on the grid.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X <= b.MaxX && p.Y >= 0 && p.Y <= b.MaxY
}

// Wrap maps any position onto the grid.
func (b Bounds) Wrap(p Position) Position {
	return Position{
		X: core.Advance(p.X, b.MaxX, 0),
		Y: core.Advance(p.Y, b.MaxY, 0),
	}
}

// Step moves p one cell in direction d, wrapping at the edges.
func (b Bounds) Step(p Position, d Direction) Position {
	dx, dy := d.Delta()
	return Position{
		X: core.Advance(p.X, b.MaxX, dx),
		Y: core.Advance(p.Y, b.MaxY, dy),
	}
}

// GridForDisplay derives play-grid bounds from a display of width x height
// character columns and rows. Each grid cell spans cellWidth columns, and
// the margins are cells left unused at the right and bottom.
func GridForDisplay(width, height, cellWidth, marginX, marginY, minGrid int) (Bounds, error) {
	if cellWidth < 1 {
		cellWidth = 1
	}
	b := Bounds{
		MaxX: width/cellWidth - 1 - marginX,
		MaxY: height - 1 - marginY,
	}
	if b.Width() < minGrid || b.Height() < minGrid {
		return Bounds{}, fmt.Errorf("%w: %dx%d terminal gives a %dx%d grid, need at least %dx%d",
			ErrDisplayTooSmall, width, height, max(b.Width(), 0), max(b.Height(), 0), minGrid, minGrid)
	}
	return b, nil
}

// Snake is the player's actor. Body[0] is the head and Body is never empty.
type Snake struct {
	Body      []Position
	Direction Direction
	Grow      bool // set on consumption, applied by the next Step
}

// Head returns the head position.
func (s *Snake) Head() Position {
	return s.Body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Collectible is a board item that feeds the snake. Inactive slots are
// respawned by the next Step.
type Collectible struct {
	Position
	Active bool
}

// World is the whole mutable state of a session. The game loop owns it
// and passes it explicitly to every phase.
type World struct {
	Snake        Snake
	Collectibles []Collectible
	Bounds       Bounds
	Capacity     int
	Playing      bool
}

// NewWorld creates a running world with the given snake body and heading.
// Body positions are wrapped onto the grid. An empty body is replaced with
// a single segment at the grid center.
func NewWorld(bounds Bounds, body []Position, dir Direction, capacity int) *World {
	if capacity < 0 {
		capacity = 0
	}
	segments := make([]Position, 0, max(len(body), 1))
	for _, p := range body {
		segments = append(segments, bounds.Wrap(p))
	}
	if len(segments) == 0 {
		segments = append(segments, Position{X: bounds.MaxX / 2, Y: bounds.MaxY / 2})
	}
	return &World{
		Snake: Snake{
			Body:      segments,
			Direction: dir,
		},
		Collectibles: make([]Collectible, 0, capacity),
		Bounds:       bounds,
		Capacity:     capacity,
		Playing:      true,
	}
}

// StartingBody returns the fixed opening layout, placed around the grid
// center. The shape is a hand-authored constant, not derived from a formula.
func StartingBody(b Bounds) []Position {
	cx, cy := b.MaxX/2, b.MaxY/2
	layout := []Position{
		{X: cx, Y: cy - 1},
		{X: cx, Y: cy},
		{X: cx + 1, Y: cy},
		{X: cx + 2, Y: cy},
		{X: cx + 3, Y: cy},
		{X: cx + 3, Y: cy + 1},
	}
	for i := range layout {
		layout[i] = b.Wrap(layout[i])
	}
	return layout
}

// NewGame creates a world with the opening layout, heading Left.
func NewGame(b Bounds, capacity int) *World {
	return NewWorld(b, StartingBody(b), Left, capacity)
}

// ActiveCollectibles counts the active collectible slots.
func (w *World) ActiveCollectibles() int {
	n := 0
	for _, c := range w.Collectibles {
		if c.Active {
			n++
		}
	}
	return n
}
