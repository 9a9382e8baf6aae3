package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/platform/ansi"
	"github.com/vovakirdan/tui-snake/internal/platform/tcellterm"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal. The grid is sized to the
terminal when the game starts.

Backends:
  tcell  - tcell screen (default)
  ansi   - raw escape sequences, no terminfo needed
  tea    - Bubble Tea program with a key help footer

Examples:
  snake play
  snake play --backend tea
  snake play --config ./my-snake.yaml --log-file /tmp/snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addBackendFlag(playCmd)
}

func addBackendFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", "", "Display backend: tcell, ansi, tea (default from config)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.Log.File, cfg.Log.Level, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting game", "backend", cfg.Display.Backend, "seed", cfg.Game.Seed)

	switch cfg.Display.Backend {
	case config.BackendANSI:
		return playANSI(ctx, cfg, logger)
	case config.BackendTea:
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return fmt.Errorf("terminal size: %w", err)
		}
		return tui.Run(cfg, width, height, logger)
	default:
		return playTcell(ctx, cfg, logger)
	}
}

func playTcell(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	sess, err := tcellterm.Open()
	if err != nil {
		return err
	}
	defer sess.Close()

	width, height := sess.Size()
	eng, err := newEngine(cfg, width, height, sess.Display(), sess.Input(), logger)
	if err != nil {
		return err
	}
	return runEngine(ctx, eng, logger)
}

func playANSI(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	local, err := ansi.OpenLocal()
	if err != nil {
		return err
	}
	defer func() {
		if err := local.Close(); err != nil {
			logger.Warn("cannot restore terminal", "error", err)
		}
	}()

	width, height := local.Size()
	eng, err := newEngine(cfg, width, height, local.Display(), local.Input(), logger)
	if err != nil {
		return err
	}
	return runEngine(ctx, eng, logger)
}

// newEngine fits a new game to a width x height terminal.
func newEngine(cfg config.Config, width, height int, d engine.Display, in engine.Input, logger *log.Logger) (*engine.Engine, error) {
	dc := cfg.Display
	bounds, err := snake.GridForDisplay(width, height, dc.CellWidth, dc.MarginX, dc.MarginY, dc.MinGrid)
	if err != nil {
		return nil, err
	}
	world := snake.NewGame(bounds, cfg.Game.CollectibleCapacity)
	return engine.New(world, d, in, snake.NewRandom(cfg.Game.Seed), engine.Options{
		TickInterval: cfg.Game.TickInterval(),
		PollTimeout:  cfg.Game.PollTimeout(),
		CellWidth:    dc.CellWidth,
		Logger:       logger,
	}), nil
}

func runEngine(ctx context.Context, eng *engine.Engine, logger *log.Logger) error {
	err := eng.Run(ctx)
	logger.Info("game over",
		"ticks", eng.Ticks(),
		"eaten", eng.Eaten(),
		"length", eng.World().Snake.Len(),
	)
	if ctx.Err() != nil {
		return nil // interrupted by signal
	}
	return err
}
