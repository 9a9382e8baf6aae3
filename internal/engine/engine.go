// Package engine runs the game loop. It sequences input, rendering, the
// update step and the tick sleep against abstract Display and Input
// collaborators, so any terminal backend can host the same game.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Default timings, in line with the classic terminal snake.
const (
	DefaultTickInterval = 200 * time.Millisecond
	DefaultPollTimeout  = 10 * time.Millisecond
	DefaultCellWidth    = 2
)

// Display is the drawing surface a frame is presented on. Nothing written
// becomes visible until Flush.
type Display interface {
	Clear()
	MoveTo(x, y int)
	WriteStyled(text string, fg, bg core.Color)
	Flush() error
}

// Input reports key presses. Poll waits up to timeout for an event; Read
// returns it without blocking once Poll has reported true.
type Input interface {
	Poll(timeout time.Duration) (bool, error)
	Read() (core.KeyEvent, error)
}

// State is the loop's lifecycle state.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options tune an Engine. Zero values fall back to the defaults.
type Options struct {
	TickInterval time.Duration
	PollTimeout  time.Duration
	CellWidth    int
	Logger       *log.Logger

	// Sleep replaces the end-of-tick wait, mainly for tests.
	Sleep func(ctx context.Context, d time.Duration)
}

// Engine drives one game session. It owns the World exclusively; nothing
// else mutates it while the engine runs.
type Engine struct {
	world   *snake.World
	display Display
	input   Input
	rng     snake.Random
	frame   *core.Screen
	opts    Options
	logger  *log.Logger
	tick    uint64
	eaten   int
}

// New creates an engine for the given world and collaborators.
func New(world *snake.World, display Display, input Input, rng snake.Random, opts Options) *Engine {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = DefaultPollTimeout
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		world:   world,
		display: display,
		input:   input,
		rng:     rng,
		frame:   snake.NewFrame(world),
		opts:    opts,
		logger:  logger,
	}
}

// World returns the engine's world. Callers must not mutate it while the
// engine is running.
func (e *Engine) World() *snake.World {
	return e.world
}

// Frame returns the most recently rendered frame.
func (e *Engine) Frame() *core.Screen {
	return e.frame
}

// State reports whether the loop is still running.
func (e *Engine) State() State {
	if e.world.Playing {
		return Running
	}
	return Stopped
}

// Ticks returns the number of completed update steps.
func (e *Engine) Ticks() uint64 {
	return e.tick
}

// Eaten returns the number of collectibles consumed so far.
func (e *Engine) Eaten() int {
	return e.eaten
}

// Run loops until the player quits, an adapter fails, or ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Debug("session started",
		"max_x", e.world.Bounds.MaxX,
		"max_y", e.world.Bounds.MaxY,
		"capacity", e.world.Capacity,
		"tick", e.opts.TickInterval,
	)
	for e.State() == Running {
		if err := ctx.Err(); err != nil {
			e.logger.Debug("session cancelled", "ticks", e.tick)
			return err
		}
		if err := e.Iterate(ctx); err != nil {
			return err
		}
	}
	e.logger.Debug("session ended", "ticks", e.tick, "eaten", e.eaten, "length", e.world.Snake.Len())
	return nil
}

// Iterate runs one full loop iteration: Tick followed by the tick sleep.
// The sleep is skipped once the loop has stopped.
func (e *Engine) Iterate(ctx context.Context) error {
	if err := e.Tick(); err != nil {
		return err
	}
	if e.State() == Running {
		e.opts.Sleep(ctx, e.opts.TickInterval)
	}
	return nil
}

// Tick handles input, renders the current world and advances it by one
// step. A quit key stops the loop before anything is drawn or moved.
// Hosts with their own timer call Tick directly.
func (e *Engine) Tick() error {
	if e.State() != Running {
		return nil
	}

	ev, ok, err := e.pollInput()
	if err != nil {
		return fmt.Errorf("engine: read input: %w", err)
	}
	if ok {
		intent := snake.MapKey(ev)
		if intent.Apply(e.world) && intent.Kind == snake.IntentTurn {
			e.logger.Debug("turn", "direction", intent.Direction, "tick", e.tick)
		}
		if e.State() == Stopped {
			e.logger.Debug("quit requested", "key", ev.String(), "tick", e.tick)
			return nil
		}
	}

	snake.Render(e.world, e.frame)
	if err := Present(e.display, e.frame, e.opts.CellWidth); err != nil {
		return fmt.Errorf("engine: present frame: %w", err)
	}

	if n := snake.Step(e.world, e.rng); n > 0 {
		e.eaten += n
		e.logger.Debug("collectible consumed", "snapshot", snake.TakeSnapshot(e.world, e.tick))
	}
	e.tick++
	return nil
}

// pollInput waits briefly for a key, then drains whatever else is already
// buffered. Only the last event of a burst is returned.
func (e *Engine) pollInput() (core.KeyEvent, bool, error) {
	var last core.KeyEvent
	ready, err := e.input.Poll(e.opts.PollTimeout)
	if err != nil || !ready {
		return last, false, err
	}
	for ready {
		last, err = e.input.Read()
		if err != nil {
			return last, false, err
		}
		ready, err = e.input.Poll(e.opts.PollTimeout)
		if err != nil {
			return last, false, err
		}
	}
	return last, true, nil
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
