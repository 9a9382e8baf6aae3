package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap lists the game's bindings for the help footer. The engine does
// the actual interpretation; see TranslateKey.
type KeyMap struct {
	Up    key.Binding
	Left  key.Binding
	Down  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the wasd bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "up")),
		Left:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "left")),
		Down:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "down")),
		Right: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "right")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Left, k.Down, k.Right}, {k.Quit}}
}

// TranslateKey converts a Bubble Tea key message to a key event.
func TranslateKey(msg tea.KeyMsg) core.KeyEvent {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return core.RuneEvent(msg.Runes[0])
		}
	case tea.KeySpace:
		return core.RuneEvent(' ')
	case tea.KeyCtrlC:
		return core.KeyEvent{Key: core.KeyCtrlC}
	case tea.KeyEsc:
		return core.KeyEvent{Key: core.KeyEscape}
	case tea.KeyEnter:
		return core.KeyEvent{Key: core.KeyEnter}
	}
	return core.KeyEvent{Key: core.KeyOther}
}
