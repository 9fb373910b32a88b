package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gallery/internal/config"
	"github.com/vovakirdan/tui-gallery/internal/core"
	"github.com/vovakirdan/tui-gallery/internal/games/gallery"
	"github.com/vovakirdan/tui-gallery/internal/platform/tui"
	"github.com/vovakirdan/tui-gallery/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the shooting gallery in the current terminal.

Controls:
  Mouse          - Aim (click to fire)
  Arrows/WASD    - Nudge the sight
  Space/F        - Fire
  Enter/R        - Start a run
  P/Esc          - Pause
  Tab            - Scoreboard (between runs)
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Examples:
  gallery play
  gallery play --fps 30
  gallery play --config ./my-gallery.yaml --log-file gallery.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.LoadGallery(flagConfig)
	if err != nil {
		return err
	}

	// Logging to the terminal would tear the alt screen
	logger, closeLog, err := newLogger("gallery", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v\n", err)
		store = nil
	}

	logger.Info("starting", "width", cfg.ScreenW, "height", cfg.ScreenH, "fps", flagFPS, "seed", flagSeed)

	runErr := tui.Run(gallery.New(gameCfg), cfg, tui.Options{
		Store:    store,
		Logger:   logger,
		Username: os.Getenv("USER"),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
