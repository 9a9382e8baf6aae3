package snake

import (
	"errors"
	"testing"
)

func TestGridForDisplay(t *testing.T) {
	tests := []struct {
		name               string
		w, h, cell, mx, my int
		expected           Bounds
	}{
		{"standard terminal", 80, 24, 2, 0, 1, Bounds{MaxX: 39, MaxY: 22}},
		{"odd width", 81, 24, 2, 0, 1, Bounds{MaxX: 39, MaxY: 22}},
		{"single column cells", 80, 24, 1, 0, 1, Bounds{MaxX: 79, MaxY: 22}},
		{"with margins", 80, 24, 2, 2, 3, Bounds{MaxX: 37, MaxY: 20}},
		{"zero cell width treated as one", 10, 10, 0, 0, 0, Bounds{MaxX: 9, MaxY: 9}},
		{"minimum grid", 6, 4, 2, 0, 1, Bounds{MaxX: 2, MaxY: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := GridForDisplay(tc.w, tc.h, tc.cell, tc.mx, tc.my, 3)
			if err != nil {
				t.Fatalf("GridForDisplay() error: %v", err)
			}
			if b != tc.expected {
				t.Errorf("GridForDisplay() = %+v, expected %+v", b, tc.expected)
			}
		})
	}
}

func TestGridForDisplayTooSmall(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"too narrow", 4, 24},
		{"too short", 80, 3},
		{"zero size", 0, 0},
		{"negative size", -10, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GridForDisplay(tc.w, tc.h, 2, 0, 1, 3)
			if !errors.Is(err, ErrDisplayTooSmall) {
				t.Errorf("GridForDisplay(%d, %d) error = %v, expected ErrDisplayTooSmall", tc.w, tc.h, err)
			}
		})
	}
}

func TestStartingBody(t *testing.T) {
	body := StartingBody(bounds10())
	expected := []Position{{4, 3}, {4, 4}, {5, 4}, {6, 4}, {7, 4}, {7, 5}}

	if len(body) != len(expected) {
		t.Fatalf("starting body has %d segments, expected %d", len(body), len(expected))
	}
	for i, p := range expected {
		if body[i] != p {
			t.Errorf("segment %d = %v, expected %v", i, body[i], p)
		}
	}
}

func TestStartingBodyWrapsOnSmallGrid(t *testing.T) {
	b := Bounds{MaxX: 2, MaxY: 2}
	for i, p := range StartingBody(b) {
		if !b.Contains(p) {
			t.Errorf("segment %d at %v is outside %+v", i, p, b)
		}
	}
}

func TestNewGame(t *testing.T) {
	w := NewGame(bounds10(), DefaultCapacity)

	if !w.Playing {
		t.Error("new game should be playing")
	}
	if w.Snake.Direction != Left {
		t.Errorf("initial direction = %v, expected left", w.Snake.Direction)
	}
	if w.Snake.Grow {
		t.Error("new game should not have pending growth")
	}
	if w.Capacity != DefaultCapacity {
		t.Errorf("capacity = %d, expected %d", w.Capacity, DefaultCapacity)
	}
}

func TestNewWorldEmptyBody(t *testing.T) {
	w := NewWorld(bounds10(), nil, Up, 1)
	if w.Snake.Len() != 1 {
		t.Fatalf("empty body should become one segment, got %d", w.Snake.Len())
	}
	if w.Snake.Head() != (Position{4, 4}) {
		t.Errorf("head = %v, expected grid center (4,4)", w.Snake.Head())
	}
}

func TestNewWorldWrapsBody(t *testing.T) {
	w := NewWorld(bounds10(), []Position{{10, -1}}, Up, 0)
	if w.Snake.Head() != (Position{0, 9}) {
		t.Errorf("head = %v, expected wrapped (0,9)", w.Snake.Head())
	}
}

func TestSeededRandomRange(t *testing.T) {
	rng := NewRandom(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := rng.IntRange(0, 4)
		if v < 0 || v > 4 {
			t.Fatalf("IntRange(0, 4) = %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("IntRange(0, 4) should reach both ends inclusively, saw %v", seen)
	}
	if rng.IntRange(3, 3) != 3 {
		t.Error("IntRange(3, 3) should return 3")
	}
}
