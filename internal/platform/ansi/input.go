package ansi

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrClosed is returned once the input stream has ended.
var ErrClosed = errors.New("ansi: input closed")

const (
	byteCtrlC  = 0x03
	byteEscape = 0x1b
	byteDelete = 0x7f
)

// Input decodes key presses from a raw byte stream. A background goroutine
// reads the stream and hands decoded events over a channel.
type Input struct {
	events  chan core.KeyEvent
	pending []core.KeyEvent
	err     error
	done    bool
}

// NewInput starts reading from r.
func NewInput(r io.Reader) *Input {
	in := &Input{events: make(chan core.KeyEvent, 256)}
	go in.readLoop(r)
	return in
}

func (in *Input) readLoop(r io.Reader) {
	defer close(in.events)
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		for _, ev := range Decode(buf[:n]) {
			in.events <- ev
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				in.err = fmt.Errorf("%w: %w", ErrClosed, err)
			}
			return
		}
	}
}

// Poll waits up to timeout for a key event.
func (in *Input) Poll(timeout time.Duration) (bool, error) {
	if len(in.pending) > 0 {
		return true, nil
	}
	if in.done {
		return false, in.closedErr()
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev, ok := <-in.events:
		if !ok {
			in.done = true
			return false, in.closedErr()
		}
		in.pending = append(in.pending, ev)
		return true, nil
	case <-timer.C:
		return false, nil
	}
}

// Read returns the oldest buffered key event.
func (in *Input) Read() (core.KeyEvent, error) {
	if len(in.pending) == 0 {
		return core.KeyEvent{}, nil
	}
	ev := in.pending[0]
	in.pending = in.pending[1:]
	return ev, nil
}

// closedErr is only called after the events channel is closed, so the
// reader's write to err is visible.
func (in *Input) closedErr() error {
	if in.err != nil {
		return in.err
	}
	return ErrClosed
}

// Decode splits one read's worth of bytes into key events. CSI and SS3
// sequences such as arrow keys decode as KeyOther; a lone ESC as KeyEscape.
func Decode(data []byte) []core.KeyEvent {
	var events []core.KeyEvent
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b == byteCtrlC:
			events = append(events, core.KeyEvent{Key: core.KeyCtrlC})
			i++
		case b == byteEscape:
			n := escapeLen(data[i:])
			if n == 1 {
				events = append(events, core.KeyEvent{Key: core.KeyEscape})
			} else {
				events = append(events, core.KeyEvent{Key: core.KeyOther})
			}
			i += n
		case b == '\r' || b == '\n':
			events = append(events, core.KeyEvent{Key: core.KeyEnter})
			i++
		case b < 0x20 || b == byteDelete:
			events = append(events, core.KeyEvent{Key: core.KeyOther})
			i++
		default:
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError {
				events = append(events, core.KeyEvent{Key: core.KeyOther})
			} else {
				events = append(events, core.RuneEvent(r))
			}
			i += size
		}
	}
	return events
}

// escapeLen returns the length of the escape sequence at the start of data.
func escapeLen(data []byte) int {
	if len(data) < 2 {
		return 1
	}
	switch data[1] {
	case '[':
		// CSI: parameters then a final byte in 0x40..0x7e.
		for j := 2; j < len(data); j++ {
			if data[j] >= 0x40 && data[j] <= 0x7e {
				return j + 1
			}
		}
		return len(data)
	case 'O':
		return min(3, len(data))
	default:
		// Alt+key.
		return 2
	}
}
