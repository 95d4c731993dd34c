//go:build !nowindow

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hbd/internal/window"
)

var (
	flagWindowW int
	flagWindowH int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the greeting in a desktop window",
	Long: `Open a desktop window with the greeting and full-resolution fireworks.

Controls:
  Click        - Launch a firework at the pointer
  Space/Enter  - Launch a big firework in the middle
  Q/Esc        - Quit

Examples:
  hbd window
  hbd window --width 1280 --height 720`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowW, "width", 960, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowH, "height", 540, "Window height in pixels")

	rootCmd.AddCommand(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) error {
	setup, err := loadGreeting(flagWindowW, flagWindowH)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("hbd", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return window.Run(window.Options{
		Title:  setup.config.Title,
		Width:  flagWindowW,
		Height: flagWindowH,
		Config: setup.runtime,
		Card:   setup.config.Card(),
		Gate:   setup.gate,
		Logger: logger,
	})
}
