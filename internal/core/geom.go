// Package core provides fundamental types and utilities shared by the game
// and its terminal backends. It has no external dependencies so the game
// logic stays pure and testable.
package core

// Advance moves coord by delta on an axis whose largest valid value is
// bound. The result wraps modulo bound+1: stepping past bound lands on 0
// and stepping below 0 lands on bound.
func Advance(coord, bound, delta int) int {
	size := bound + 1
	if size <= 0 {
		return 0
	}
	r := (coord + delta) % size
	if r < 0 {
		r += size
	}
	return r
}

