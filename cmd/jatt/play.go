package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flying-jatt/internal/config"
	"github.com/vovakirdan/flying-jatt/internal/core"
	"github.com/vovakirdan/flying-jatt/internal/games/jatt"
	"github.com/vovakirdan/flying-jatt/internal/platform/tui"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flying Jatt",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/W - Flap
  F          - Fire (hold to keep firing)
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.jatt/screenshots
  Q/Ctrl+C   - Quit

Config search order when --config is not given:
  ~/.jatt/configs/jatt.yaml, ~/.jatt/configs/jatt.toml,
  ./configs/jatt.yaml, then built-in defaults.

Examples:
  jatt play
  jatt play --seed 42
  jatt play --config ./my-jatt.toml --log-file jatt.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The TUI owns stdout, so logs are dropped unless --log-file is set
	logger, closer, err := newLogger("jatt", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	gameCfg, err := config.LoadJatt(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := jatt.New(gameCfg, core.SystemClock{})
	if err := tui.Run(game, cfg, logger); err != nil {
		fail("%v", err)
	}
}
