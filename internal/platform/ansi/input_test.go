package ansi

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected []core.KeyEvent
	}{
		{"single rune", "w", []core.KeyEvent{core.RuneEvent('w')}},
		{"burst", "wad", []core.KeyEvent{core.RuneEvent('w'), core.RuneEvent('a'), core.RuneEvent('d')}},
		{"ctrl+c", "\x03", []core.KeyEvent{{Key: core.KeyCtrlC}}},
		{"lone escape", "\x1b", []core.KeyEvent{{Key: core.KeyEscape}}},
		{"arrow", "\x1b[A", []core.KeyEvent{{Key: core.KeyOther}}},
		{"arrow then rune", "\x1b[Dq", []core.KeyEvent{{Key: core.KeyOther}, core.RuneEvent('q')}},
		{"ss3", "\x1bOBs", []core.KeyEvent{{Key: core.KeyOther}, core.RuneEvent('s')}},
		{"alt key", "\x1bw", []core.KeyEvent{{Key: core.KeyOther}}},
		{"enter", "\r", []core.KeyEvent{{Key: core.KeyEnter}}},
		{"control byte", "\x01", []core.KeyEvent{{Key: core.KeyOther}}},
		{"utf8", "é", []core.KeyEvent{core.RuneEvent('é')}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode([]byte(tt.data))
			if len(got) != len(tt.expected) {
				t.Fatalf("Decode(%q) = %v, expected %v", tt.data, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Decode(%q)[%d] = %v, expected %v", tt.data, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestInputReadsStream(t *testing.T) {
	in := NewInput(strings.NewReader("wq"))

	var got []core.KeyEvent
	for {
		ready, err := in.Poll(100 * time.Millisecond)
		if errors.Is(err, ErrClosed) {
			break
		}
		if err != nil {
			t.Fatalf("Poll() error = %v", err)
		}
		if !ready {
			t.Fatal("Poll() timed out before stream end")
		}
		ev, err := in.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		got = append(got, ev)
	}

	if len(got) != 2 || got[0] != core.RuneEvent('w') || got[1] != core.RuneEvent('q') {
		t.Errorf("events = %v, expected [w q]", got)
	}
}

func TestInputPollTimeout(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	in := NewInput(r)

	ready, err := in.Poll(time.Millisecond)
	if err != nil || ready {
		t.Errorf("Poll() = %v, %v, expected false, nil", ready, err)
	}
}

func TestInputReadError(t *testing.T) {
	r, w := io.Pipe()
	in := NewInput(r)
	w.CloseWithError(errors.New("device gone"))

	_, err := in.Poll(100 * time.Millisecond)
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Poll() error = %v, expected ErrClosed", err)
	}
	if err == nil || !strings.Contains(err.Error(), "device gone") {
		t.Errorf("Poll() error = %v, expected cause", err)
	}
}
