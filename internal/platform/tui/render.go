package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hbd/internal/core"
)

// Painter turns cell buffers into styled strings. Styles are built once per
// distinct cell style and cached; a firework frame reuses few of them.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[core.Cell]lipgloss.Style
}

// NewPainter creates a painter drawing through r. A nil renderer uses the
// default lipgloss renderer (the local terminal).
func NewPainter(r *lipgloss.Renderer) *Painter {
	return &Painter{
		renderer: r,
		styles:   make(map[core.Cell]lipgloss.Style),
	}
}

// maxCachedStyles bounds the style cache; fading particles produce a long
// tail of one-off colors.
const maxCachedStyles = 4096

func (p *Painter) style(key core.Cell) lipgloss.Style {
	if s, ok := p.styles[key]; ok {
		return s
	}
	if len(p.styles) >= maxCachedStyles {
		clear(p.styles)
	}

	var s lipgloss.Style
	if p.renderer != nil {
		s = p.renderer.NewStyle()
	} else {
		s = lipgloss.NewStyle()
	}
	if key.HasFg {
		s = s.Foreground(lipgloss.Color(key.Fg.Hex()))
	}
	if key.HasBg {
		s = s.Background(lipgloss.Color(key.Bg.Hex()))
	}
	if key.Bold {
		s = s.Bold(true)
	}
	p.styles[key] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style()

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style() != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == core.Blank.Style() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultPainter = NewPainter(nil)

// RenderScreen renders s with the default painter.
func RenderScreen(s *core.Screen) string {
	return defaultPainter.Render(s)
}
