package snake

import "fmt"

// Snapshot is a flat copy of the world used for determinism checks and
// debug logging.
type Snapshot struct {
	Tick         uint64
	SnakeLen     int
	HeadX        int
	HeadY        int
	Dir          Direction
	Growing      bool
	Collectibles int
	Active       int
	Playing      bool
}

// TakeSnapshot captures the world at the given tick.
func TakeSnapshot(w *World, tick uint64) Snapshot {
	head := w.Snake.Head()
	return Snapshot{
		Tick:         tick,
		SnakeLen:     w.Snake.Len(),
		HeadX:        head.X,
		HeadY:        head.Y,
		Dir:          w.Snake.Direction,
		Growing:      w.Snake.Grow,
		Collectibles: len(w.Collectibles),
		Active:       w.ActiveCollectibles(),
		Playing:      w.Playing,
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("tick=%d len=%d head=(%d,%d) dir=%s grow=%v items=%d/%d playing=%v",
		s.Tick, s.SnakeLen, s.HeadX, s.HeadY, s.Dir, s.Growing, s.Active, s.Collectibles, s.Playing)
}
