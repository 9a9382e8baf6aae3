package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Model is the Bubble Tea model for one snake session. Bubble Tea's tick
// replaces the engine's own sleep; each TickMsg runs one engine iteration.
type Model struct {
	engine   *engine.Engine
	buffer   *Buffer
	queue    *Queue
	keys     KeyMap
	help     help.Model
	interval time.Duration
	showHelp bool
	quitting bool
	err      error
}

// NewModel creates a session on a width x height terminal. The grid is
// fitted once; later resizes do not change it.
func NewModel(cfg config.Config, width, height int, r *lipgloss.Renderer, logger *log.Logger) (Model, error) {
	d := cfg.Display
	bounds, err := snake.GridForDisplay(width, height, d.CellWidth, d.MarginX, d.MarginY, d.MinGrid)
	if err != nil {
		return Model{}, err
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	world := snake.NewGame(bounds, cfg.Game.CollectibleCapacity)
	buffer := NewBuffer(bounds.Width()*d.CellWidth, bounds.Height(), r)
	queue := &Queue{}
	eng := engine.New(world, buffer, queue, snake.NewRandom(cfg.Game.Seed), engine.Options{
		TickInterval: cfg.Game.TickInterval(),
		PollTimeout:  cfg.Game.PollTimeout(),
		CellWidth:    d.CellWidth,
		Logger:       logger,
	})

	h := help.New()
	h.Width = width

	return Model{
		engine:   eng,
		buffer:   buffer,
		queue:    queue,
		keys:     DefaultKeyMap(),
		help:     h,
		interval: cfg.Game.TickInterval(),
		showHelp: d.MarginY > 0,
	}, nil
}

// Init starts the first iteration immediately.
func (m Model) Init() tea.Cmd {
	return tickNow
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.queue.Push(TranslateKey(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one engine iteration and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.engine.Tick(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if m.engine.State() == engine.Stopped {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.interval)
}

// View renders the last presented frame with the help footer below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.showHelp {
		return m.buffer.View()
	}
	return m.buffer.View() + "\n" + m.help.View(m.keys)
}

// Engine returns the hosted engine.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays one session in the local terminal.
func Run(cfg config.Config, width, height int, logger *log.Logger) error {
	model, err := NewModel(cfg, width, height, nil, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
