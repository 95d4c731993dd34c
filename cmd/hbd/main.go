// hbd shows a Happy Birthday greeting with click-to-launch fireworks.
//
// Usage:
//
//	hbd show                 - Show the greeting in this terminal
//	hbd serve                - Serve the greeting over SSH
//	hbd window               - Show the greeting in a desktop window (not in -tags nowindow builds)
//	hbd visits               - List recent SSH visits
//	hbd preview              - Print a headless firework frame as text
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible fireworks
//	--config <path>    - Use a custom greeting YAML
//	--db <path>        - Set visit log path (default: ~/.hbd/visits.db)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hbd/internal/config"
	"github.com/vovakirdan/tui-hbd/internal/core"
	"github.com/vovakirdan/tui-hbd/internal/greeting"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hbd",
	Short: "Happy Birthday - fireworks in your terminal",
	Long: `hbd shows a birthday greeting over a night sky. Every click launches
a firework burst at the pointer.

Available commands:
  show     - Show the greeting in this terminal
  serve    - Serve the greeting over SSH
  window   - Show the greeting in a desktop window
  visits   - List recent SSH visits
  preview  - Print a headless firework frame as text

Examples:
  hbd show
  hbd show --config ./ada.yaml
  hbd serve --addr :2222
  hbd preview --at 40,30 --frames 12`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom greeting YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hbd/visits.db", "Path to visit log database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(visitsCmd)
	rootCmd.AddCommand(previewCmd)
}

// newLogger returns a logger writing to --log-file, or to fallback when no
// file is set. A nil fallback discards. The returned func closes the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// greetingSetup is the loaded greeting shared by the display commands.
type greetingSetup struct {
	config  config.GreetingConfig
	gate    greeting.Gate
	runtime core.RuntimeConfig
}

// loadGreeting reads the greeting config and builds the runtime config for
// a w x h screen.
func loadGreeting(w, h int) (greetingSetup, error) {
	gc, err := config.Load(flagConfig)
	if err != nil {
		return greetingSetup{}, err
	}
	gate, err := gc.Gate(time.Local)
	if err != nil {
		return greetingSetup{}, err
	}

	rc := gc.Apply(core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})
	return greetingSetup{config: gc, gate: gate, runtime: rc.Normalized()}, nil
}
