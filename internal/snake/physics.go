package snake

// Step advances the world by one tick. The phases run in a fixed order
// and reordering them changes what the player sees:
//
//  1. consume collectibles under the head
//  2. apply pending growth
//  3. shift the body forward, tail first
//  4. advance the head with wraparound
//  5. spawn collectibles up to capacity
//  6. respawn inactive collectibles
//
// It returns the number of collectibles consumed this tick.
func Step(w *World, rng Random) int {
	eaten := consume(w)
	grow(&w.Snake)
	follow(&w.Snake)
	advanceHead(w)
	spawnToCapacity(w, rng)
	respawn(w, rng)
	return eaten
}

// consume deactivates every active collectible under the head and marks
// the snake for growth. The head checked is the one the previous Step
// left, which is what the last frame showed.
func consume(w *World) int {
	head := w.Snake.Head()
	eaten := 0
	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if c.Active && c.Position == head {
			c.Active = false
			w.Snake.Grow = true
			eaten++
		}
	}
	return eaten
}

// grow appends a tail segment when growth is pending. Its position is a
// placeholder: follow overwrites it in the same Step.
func grow(s *Snake) {
	if !s.Grow {
		return
	}
	s.Grow = false
	s.Body = append(s.Body, Position{})
}

// follow copies each segment's predecessor into it, tail first, so no
// position is overwritten before it has been copied.
func follow(s *Snake) {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
}

func advanceHead(w *World) {
	w.Snake.Body[0] = w.Bounds.Step(w.Snake.Body[0], w.Snake.Direction)
}

func spawnToCapacity(w *World, rng Random) {
	for len(w.Collectibles) < w.Capacity {
		w.Collectibles = append(w.Collectibles, Collectible{
			Position: randomPosition(w.Bounds, rng),
			Active:   true,
		})
	}
}

func respawn(w *World, rng Random) {
	for i := range w.Collectibles {
		if !w.Collectibles[i].Active {
			w.Collectibles[i] = Collectible{
				Position: randomPosition(w.Bounds, rng),
				Active:   true,
			}
		}
	}
}

func randomPosition(b Bounds, rng Random) Position {
	return Position{
		X: rng.IntRange(0, b.MaxX),
		Y: rng.IntRange(0, b.MaxY),
	}
}
