package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hbd/internal/config"
	"github.com/vovakirdan/tui-hbd/internal/platform/tui"
)

var flagPrintConfig bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the greeting in this terminal",
	Long: `Show the birthday greeting with fireworks in this terminal.

Controls:
  Click        - Launch a firework at the pointer
  Space/Enter  - Launch a big firework in the middle
  ?            - Toggle help
  Ctrl+S       - Save a text screenshot to ~/.hbd/screenshots
  Q/Esc        - Quit

If the greeting has an unlock_time in the future, a countdown is shown
until it opens.

Examples:
  hbd show
  hbd show --print-config > ~/.hbd/configs/greeting.yaml
  hbd show --config ./ada.yaml
  hbd show --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagPrintConfig, "print-config", false, "Print the default greeting YAML and exit")
}

// printConfig writes the default greeting file, a starting point for
// --config or ~/.hbd/configs/greeting.yaml.
func printConfig(w io.Writer) error {
	if _, err := w.Write(config.DefaultYAML()); err != nil {
		return fmt.Errorf("print config: %w", err)
	}
	return nil
}

func runShow(_ *cobra.Command, _ []string) error {
	if flagPrintConfig {
		return printConfig(os.Stdout)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	setup, err := loadGreeting(width, height)
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs only go to --log-file.
	logger, closeLog, err := newLogger("hbd", nil)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("greeting loaded", "source", setup.config.Source, "unlock", setup.gate.UnlockAt())

	return tui.Run(tui.Options{
		Config:        setup.runtime,
		Card:          setup.config.Card(),
		Gate:          setup.gate,
		Logger:        logger,
		ScreenshotDir: config.UserPath("screenshots"),
	})
}
