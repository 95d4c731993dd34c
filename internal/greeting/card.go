// Package greeting holds the personalized text drawn over the fireworks
// and the unlock gate that keeps it hidden until a chosen moment.
package greeting

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-hbd/internal/core"
)

// Card is the greeting text.
type Card struct {
	Title    string
	Name     string
	Messages []string
}

var (
	titleStyle   = core.Cell{Fg: mustHex("#ffbd33"), HasFg: true, Bold: true}
	nameStyle    = core.Cell{Fg: mustHex("#f033ff"), HasFg: true, Bold: true}
	messageStyle = core.Cell{Fg: mustHex("#f5f5f5"), HasFg: true}
	dimStyle     = core.Cell{Fg: mustHex("#8a8a8a"), HasFg: true}
	frameStyle   = core.Cell{Fg: mustHex("#3357ff"), HasFg: true}
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

type styledLine struct {
	text  string
	style core.Cell
}

func (c Card) styled() []styledLine {
	var lines []styledLine
	if c.Title != "" {
		lines = append(lines, styledLine{c.Title, titleStyle})
	}
	if c.Name != "" {
		lines = append(lines, styledLine{c.Name, nameStyle})
	}
	if len(c.Messages) > 0 && len(lines) > 0 {
		lines = append(lines, styledLine{"", messageStyle})
	}
	for _, m := range c.Messages {
		lines = append(lines, styledLine{m, messageStyle})
	}
	return lines
}

// Lines returns the card's visible lines, top to bottom, with empty fields
// skipped.
func (c Card) Lines() []string {
	styled := c.styled()
	lines := make([]string, len(styled))
	for i, l := range styled {
		lines[i] = l.text
	}
	return lines
}

// Draw centers the card vertically within the top height rows of dst.
// Text keeps the firework light behind it.
func (c Card) Draw(dst *core.Screen, height int) {
	lines := c.styled()
	y := (height - len(lines)) / 2
	for i, l := range lines {
		dst.DrawTextCentered(y+i, l.text, l.style)
	}
}

// DrawCountdown draws the locked screen: a framed countdown to the gate's
// opening time.
func DrawCountdown(dst *core.Screen, height int, g Gate, now time.Time) {
	lines := []string{
		"Something is waiting for you",
		"",
		FormatRemaining(g.Remaining(now)),
		"",
		fmt.Sprintf("opens %s", g.UnlockAt().Format("2006-01-02 15:04:05")),
	}
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	box := core.CenteredRect(dst.Width(), height, width+6, len(lines)+4)
	dst.DrawRect(box, core.Blank)
	dst.DrawBox(box, frameStyle)
	text := box.Inset(2)
	for i, l := range lines {
		style := messageStyle
		switch i {
		case 2:
			style = titleStyle
		case 4:
			style = dimStyle
		}
		dst.DrawTextCentered(text.Y+i, l, style)
	}
}
