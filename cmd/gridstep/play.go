package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridstep/internal/config"
	"github.com/vovakirdan/gridstep/internal/core"
	"github.com/vovakirdan/gridstep/internal/platform/tui"
	"github.com/vovakirdan/gridstep/internal/world"
)

var (
	flagPreset string
	flagFPS    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the interactive board",
	Long: `Open the board and move every entity with the keyboard.

Controls:
  Arrows/WASD - Move (all entities listen to the same keys)
  Tab         - Select entity
  , .         - Turn the selected entity's facing without moving
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Speed presets:
  slow   - Half the configured speeds
  normal - Configured speeds
  fast   - Double the configured speeds

Examples:
  gridstep play
  gridstep play --preset slow
  gridstep play --fps 30 --log ./gridstep.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Speed preset: slow, normal, fast")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (default: tick_rate from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLog, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyPreset(&cfg, config.SpeedPreset(flagPreset)); err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	w, err := world.New(cfg)
	if err != nil {
		return err
	}
	defer w.Close()

	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = tw, th
	}

	logger.Info("starting",
		"entities", len(w.Entities()),
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"movement_speed", cfg.Movement.MovementSpeed,
		"rotate_speed", cfg.Movement.RotateSpeed,
		"tick_rate", cfg.TickRate,
	)

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
	}
	if err := tui.Run(w, rt, logger); err != nil {
		logger.Error("tui exited", "error", err)
		return fmt.Errorf("error running board: %w", err)
	}

	logger.Info("stopped", "ticks", w.Ticks())
	return nil
}
