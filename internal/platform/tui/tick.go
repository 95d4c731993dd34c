// Package tui provides the Bubble Tea integration for the greeting: the
// frame loop, mouse and key handling, styled rendering of the cell buffer,
// the visit log viewer and serving all of it over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hbd/internal/core"
)

// Frame rate limits.
const (
	DefaultTickRate = 60
	MaxTickRate     = 240
)

// TickMsg is sent once per display frame.
type TickMsg time.Time

// clampTickRate maps non-positive rates to the default and caps fast ones.
func clampTickRate(tickRate int) int {
	if tickRate <= 0 {
		return DefaultTickRate
	}
	return core.Clamp(tickRate, 1, MaxTickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(clampTickRate(tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
