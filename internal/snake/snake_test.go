package snake

// sequenceRandom returns values from a fixed list, cycling when exhausted.
type sequenceRandom struct {
	values []int
	next   int
}

func (r *sequenceRandom) IntRange(low, high int) int {
	if len(r.values) == 0 || high <= low {
		return low
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return low + v%(high-low+1)
}

// zeroRandom places every collectible at the origin.
func zeroRandom() *sequenceRandom {
	return &sequenceRandom{}
}

func bounds10() Bounds {
	return Bounds{MaxX: 9, MaxY: 9}
}

func copyBody(s Snake) []Position {
	out := make([]Position, len(s.Body))
	copy(out, s.Body)
	return out
}
