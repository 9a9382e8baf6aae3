package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded defaults. It matches the embedded
// defaults/snake.yaml.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			TickMs:              200,
			PollMs:              10,
			CollectibleCapacity: 4,
		},
		Display: DisplayConfig{
			Backend:   BackendTcell,
			CellWidth: 2,
			MarginX:   0,
			MarginY:   1,
			MinGrid:   3,
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
