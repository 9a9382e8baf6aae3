package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// recordingDisplay draws into a screen buffer and keeps a copy of every
// flushed frame.
type recordingDisplay struct {
	screen   *core.Screen
	cursorX  int
	cursorY  int
	frames   []*core.Screen
	flushErr error
}

func newRecordingDisplay(w, h int) *recordingDisplay {
	return &recordingDisplay{screen: core.NewScreen(w, h)}
}

func (d *recordingDisplay) Clear() { d.screen.Clear() }

func (d *recordingDisplay) MoveTo(x, y int) { d.cursorX, d.cursorY = x, y }

func (d *recordingDisplay) WriteStyled(text string, fg, bg core.Color) {
	d.screen.DrawText(d.cursorX, d.cursorY, text, fg, bg)
	d.cursorX += len([]rune(text))
}

func (d *recordingDisplay) Flush() error {
	if d.flushErr != nil {
		return d.flushErr
	}
	snap := core.NewScreen(d.screen.Width(), d.screen.Height())
	for y := 0; y < d.screen.Height(); y++ {
		for x := 0; x < d.screen.Width(); x++ {
			snap.SetCell(x, y, d.screen.GetCell(x, y))
		}
	}
	d.frames = append(d.frames, snap)
	return nil
}

// scriptedInput delivers queued events. Each inner slice is the burst
// available on one tick; a tick with no burst has no input.
type scriptedInput struct {
	bursts  [][]core.KeyEvent
	pending []core.KeyEvent
	polls   int
	err     error
}

func (in *scriptedInput) Poll(time.Duration) (bool, error) {
	if in.err != nil {
		return false, in.err
	}
	in.polls++
	return len(in.pending) > 0, nil
}

func (in *scriptedInput) Read() (core.KeyEvent, error) {
	ev := in.pending[0]
	in.pending = in.pending[1:]
	return ev, nil
}

// nextTick loads the burst for the coming tick.
func (in *scriptedInput) nextTick() {
	in.pending = nil
	if len(in.bursts) > 0 {
		in.pending = in.bursts[0]
		in.bursts = in.bursts[1:]
	}
}

// fixedRandom always returns the low end of the range.
type fixedRandom struct{}

func (fixedRandom) IntRange(low, _ int) int { return low }

// countingSleep records sleep calls without waiting.
type countingSleep struct {
	calls []time.Duration
}

func (s *countingSleep) sleep(_ context.Context, d time.Duration) {
	s.calls = append(s.calls, d)
}
