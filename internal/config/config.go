// Package config provides YAML-based configuration loading for the snake
// game and its SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Display backends.
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
	BackendTea   = "tea"
)

// Config is the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines loop timing and board population.
type GameConfig struct {
	TickMs              int   `yaml:"tick_ms"`
	PollMs              int   `yaml:"poll_ms"`
	CollectibleCapacity int   `yaml:"collectible_capacity"`
	Seed                int64 `yaml:"seed"` // 0 = time-based
}

// DisplayConfig defines how the grid is fitted to the terminal.
type DisplayConfig struct {
	Backend   string `yaml:"backend"`
	CellWidth int    `yaml:"cell_width"` // character columns per grid cell
	MarginX   int    `yaml:"margin_x"`   // unused grid cells at the right
	MarginY   int    `yaml:"margin_y"`   // unused rows at the bottom
	MinGrid   int    `yaml:"min_grid"`   // smallest playable grid side
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"` // empty = ~/.snake/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty = discard locally, stderr for serve
}

// TickInterval returns the loop's tick duration.
func (g GameConfig) TickInterval() time.Duration {
	return time.Duration(g.TickMs) * time.Millisecond
}

// PollTimeout returns the bounded input wait.
func (g GameConfig) PollTimeout() time.Duration {
	return time.Duration(g.PollMs) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.Game.TickMs <= 0:
		return fmt.Errorf("%w: game.tick_ms must be positive, got %d", ErrInvalid, c.Game.TickMs)
	case c.Game.PollMs <= 0:
		return fmt.Errorf("%w: game.poll_ms must be positive, got %d", ErrInvalid, c.Game.PollMs)
	case c.Game.CollectibleCapacity <= 0:
		return fmt.Errorf("%w: game.collectible_capacity must be positive, got %d", ErrInvalid, c.Game.CollectibleCapacity)
	case c.Display.CellWidth <= 0:
		return fmt.Errorf("%w: display.cell_width must be positive, got %d", ErrInvalid, c.Display.CellWidth)
	case c.Display.MarginX < 0 || c.Display.MarginY < 0:
		return fmt.Errorf("%w: display margins must not be negative, got %d,%d", ErrInvalid, c.Display.MarginX, c.Display.MarginY)
	case c.Display.MinGrid <= 0:
		return fmt.Errorf("%w: display.min_grid must be positive, got %d", ErrInvalid, c.Display.MinGrid)
	case c.Server.IdleTimeoutMinutes < 0:
		return fmt.Errorf("%w: server.idle_timeout_minutes must not be negative, got %d", ErrInvalid, c.Server.IdleTimeoutMinutes)
	}

	switch c.Display.Backend {
	case BackendTcell, BackendANSI, BackendTea:
	default:
		return fmt.Errorf("%w: display.backend %q (want tcell, ansi or tea)", ErrInvalid, c.Display.Backend)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
