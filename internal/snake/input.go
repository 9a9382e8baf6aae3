package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// IntentKind classifies what a key press asks the game to do.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentQuit
	IntentTurn
)

// Intent is the game-level meaning of a key press. Direction is only
// meaningful for IntentTurn.
type Intent struct {
	Kind      IntentKind
	Direction Direction
}

// MapKey translates a key event. q and Ctrl+C quit; w, a, s and d turn.
// Everything else is ignored.
func MapKey(ev core.KeyEvent) Intent {
	switch ev.Key {
	case core.KeyCtrlC:
		return Intent{Kind: IntentQuit}
	case core.KeyRune:
		switch ev.Rune {
		case 'q':
			return Intent{Kind: IntentQuit}
		case 'w':
			return Intent{Kind: IntentTurn, Direction: Up}
		case 'a':
			return Intent{Kind: IntentTurn, Direction: Left}
		case 's':
			return Intent{Kind: IntentTurn, Direction: Down}
		case 'd':
			return Intent{Kind: IntentTurn, Direction: Right}
		}
	}
	return Intent{Kind: IntentNone}
}

// Apply carries out an intent on the world. A turn onto the reverse of the
// current heading is ignored so the head cannot fold back onto the neck.
// It reports whether the world changed.
func (in Intent) Apply(w *World) bool {
	switch in.Kind {
	case IntentQuit:
		w.Playing = false
		return true
	case IntentTurn:
		if in.Direction == w.Snake.Direction.Opposite() || in.Direction == w.Snake.Direction {
			return false
		}
		w.Snake.Direction = in.Direction
		return true
	}
	return false
}
