// gallery is a terminal shooting gallery: hit enemies, spare civilians, beat
// the clock.
//
// Usage:
//
//	gallery play             - Play in this terminal
//	gallery serve            - Start SSH server for remote play
//	gallery config           - Print the effective game configuration
//	gallery runs             - Show runs from a run log file
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Run log location (default: in memory)
//	--config <path>    - Custom game config YAML
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gallery/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Operation Blackbriar - a shooting gallery in your terminal",
	Long: `A timed shooting gallery for the terminal.

Shoot enemy targets before they escape, leave civilians alone, and make the
leaderboard before the minute runs out.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration
  runs     - Show runs from a run log file

Examples:
  gallery play
  gallery play --seed 42
  gallery serve --ssh :2222
  gallery config > my-gallery.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryDSN, "Run log database (in memory unless a file path is given)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger builds a logger that writes to --log-file when set and to
// fallback otherwise. The returned closer releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
