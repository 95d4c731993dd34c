// Package canvas rasterizes firework draw calls onto terminal cells.
//
// Each cell is split into two square dots stacked vertically and presented
// with half-block runes, so a terminal of C×R cells gives a C×2R dot
// raster. Light accumulates additively in float RGB and is clamped only
// when presented.
package canvas

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-hbd/internal/core"
	"github.com/vovakirdan/tui-hbd/internal/firework"
)

// Pixel geometry of one terminal cell. Click coordinates and particle
// positions are in these pixels.
const (
	CellWidth  = 8
	CellHeight = 16
	DotSize    = CellHeight / 2
)

// glowStrength scales the halo relative to the particle core.
const glowStrength = 0.35

// litThreshold is the brightest channel value below which a dot is dark.
const litThreshold = 0.03

const asciiRamp = " .:-=+*#%@"

type rgb struct {
	r, g, b float64
}

func (c rgb) peak() float64 {
	return max(c.r, c.g, c.b)
}

func (c rgb) color() colorful.Color {
	return colorful.Color{R: c.r, G: c.g, B: c.b}.Clamped()
}

// Canvas is an additive dot raster sized in terminal cells.
type Canvas struct {
	cols, rows int
	dots       []rgb // cols × 2*rows, row-major
}

// New creates a canvas of cols×rows cells.
func New(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the canvas to cols×rows cells and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.dots = make([]rgb, c.cols*c.rows*2)
}

// Cols returns the width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Width returns the width in pixels.
func (c *Canvas) Width() float64 { return float64(c.cols * CellWidth) }

// Height returns the height in pixels.
func (c *Canvas) Height() float64 { return float64(c.rows * CellHeight) }

// Center returns the pixel center of the canvas.
func (c *Canvas) Center() (x, y float64) {
	return c.Width() / 2, c.Height() / 2
}

// CellCenter returns the pixel coordinate at the middle of cell (x, y).
func CellCenter(x, y int) (px, py float64) {
	return (float64(x) + 0.5) * CellWidth, (float64(y) + 0.5) * CellHeight
}

// Clear turns every dot dark.
func (c *Canvas) Clear() {
	clear(c.dots)
}

// FillCircle adds one particle's light. The dot under the center receives
// the full core; dots the disc covers also get the core, and dots within
// the glow radius get a linearly fading halo.
func (c *Canvas) FillCircle(circle firework.Circle) {
	if circle.Alpha <= 0 || len(c.dots) == 0 {
		return
	}
	const half = DotSize / 2.0

	col := rgb{circle.Color.R, circle.Color.G, circle.Color.B}
	reach := circle.Radius + circle.Glow + half
	cx0 := int(math.Floor((circle.X - reach) / DotSize))
	cx1 := int(math.Floor((circle.X + reach) / DotSize))
	cy0 := int(math.Floor((circle.Y - reach) / DotSize))
	cy1 := int(math.Floor((circle.Y + reach) / DotSize))
	coreX := int(math.Floor(circle.X / DotSize))
	coreY := int(math.Floor(circle.Y / DotSize))

	for dy := cy0; dy <= cy1; dy++ {
		for dx := cx0; dx <= cx1; dx++ {
			var weight float64
			d := math.Hypot(float64(dx)*DotSize+half-circle.X, float64(dy)*DotSize+half-circle.Y)
			switch {
			case dx == coreX && dy == coreY, d <= circle.Radius:
				weight = 1
			case circle.Glow > 0:
				weight = glowStrength * (1 - (d-circle.Radius-half)/circle.Glow)
			}
			if weight <= 0 {
				continue
			}
			c.add(dx, dy, col, circle.Alpha*min(weight, 1))
		}
	}
}

func (c *Canvas) add(dx, dy int, col rgb, a float64) {
	if dx < 0 || dx >= c.cols || dy < 0 || dy >= c.rows*2 {
		return
	}
	p := &c.dots[dy*c.cols+dx]
	p.r += col.r * a
	p.g += col.g * a
	p.b += col.b * a
}

func (c *Canvas) dot(dx, dy int) rgb {
	if dx < 0 || dx >= c.cols || dy < 0 || dy >= c.rows*2 {
		return rgb{}
	}
	return c.dots[dy*c.cols+dx]
}

// Dot returns the clamped color of dot (dx, dy) and whether it is lit.
func (c *Canvas) Dot(dx, dy int) (colorful.Color, bool) {
	d := c.dot(dx, dy)
	return d.color(), d.peak() >= litThreshold
}

// Lit returns the number of lit dots.
func (c *Canvas) Lit() int {
	n := 0
	for _, d := range c.dots {
		if d.peak() >= litThreshold {
			n++
		}
	}
	return n
}

// Present writes the raster into dst as half-block cells. Cells with both
// halves dark become Blank.
func (c *Canvas) Present(dst *core.Screen) {
	rows := min(c.rows, dst.Height())
	cols := min(c.cols, dst.Width())
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, bottom := c.dot(x, 2*y), c.dot(x, 2*y+1)
			topLit, bottomLit := top.peak() >= litThreshold, bottom.peak() >= litThreshold
			cell := core.Blank
			switch {
			case topLit && bottomLit:
				cell = core.Cell{Rune: '▀', Fg: top.color(), HasFg: true, Bg: bottom.color(), HasBg: true}
			case topLit:
				cell = core.Cell{Rune: '▀', Fg: top.color(), HasFg: true}
			case bottomLit:
				cell = core.Cell{Rune: '▄', Fg: bottom.color(), HasFg: true}
			}
			dst.SetCell(x, y, cell)
		}
	}
}

// ASCII renders the raster as plain text, one character per cell, using a
// brightness ramp.
func (c *Canvas) ASCII() string {
	var sb strings.Builder
	ramp := []rune(asciiRamp)
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.cols; x++ {
			peak := core.ClampF(max(c.dot(x, 2*y).peak(), c.dot(x, 2*y+1).peak()), 0, 1)
			if peak < litThreshold {
				sb.WriteRune(ramp[0])
				continue
			}
			i := 1 + int(peak*float64(len(ramp)-2)+0.5)
			sb.WriteRune(ramp[core.Clamp(i, 1, len(ramp)-1)])
		}
	}
	return sb.String()
}

var (
	_ firework.Surface = (*Canvas)(nil)
	_ firework.Resizer = (*Canvas)(nil)
)
