package core

// Key identifies a non-character key. Printable keys arrive as KeyRune
// with the character in KeyEvent.Rune.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyCtrlC
	KeyEscape
	KeyEnter
	KeyOther
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyRune:
		return "rune"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyEscape:
		return "esc"
	case KeyEnter:
		return "enter"
	default:
		return "other"
	}
}

// KeyEvent is a single key press as reported by an input backend.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// RuneEvent is shorthand for a printable key press.
func RuneEvent(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// String formats the event for logs.
func (e KeyEvent) String() string {
	if e.Key == KeyRune {
		return string(e.Rune)
	}
	return e.Key.String()
}
