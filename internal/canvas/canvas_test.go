package canvas

import (
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-hbd/internal/core"
	"github.com/vovakirdan/tui-hbd/internal/firework"
)

func gray(v float64) colorful.Color {
	return colorful.Color{R: v, G: v, B: v}
}

func TestCanvasGeometry(t *testing.T) {
	c := New(10, 5)
	if c.Width() != 80 || c.Height() != 80 {
		t.Errorf("size = %vx%v px, expected 80x80", c.Width(), c.Height())
	}
	if x, y := c.Center(); x != 40 || y != 40 {
		t.Errorf("Center() = (%v, %v), expected (40, 40)", x, y)
	}
	if x, y := CellCenter(2, 1); x != 20 || y != 24 {
		t.Errorf("CellCenter(2, 1) = (%v, %v), expected (20, 24)", x, y)
	}

	c.Resize(-1, 3)
	if c.Cols() != 0 || c.Rows() != 3 {
		t.Errorf("after Resize(-1, 3): %dx%d", c.Cols(), c.Rows())
	}
	// Drawing on a zero-width canvas is a no-op.
	c.FillCircle(firework.Circle{X: 1, Y: 1, Radius: 2, Color: gray(1), Alpha: 1, Glow: 10})
}

func TestFillCircleHalfBlocks(t *testing.T) {
	red, _ := colorful.Hex("#ff0000")
	tests := []struct {
		name     string
		x, y     float64
		wantRune rune
		wantBg   bool
	}{
		{"top half", 4, 4, '▀', false},
		{"bottom half", 4, 12, '▄', false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(4, 2)
			c.FillCircle(firework.Circle{X: tc.x, Y: tc.y, Radius: 1, Color: red, Alpha: 1})

			s := core.NewScreen(4, 2)
			c.Present(s)
			cell := s.GetCell(0, 0)
			if cell.Rune != tc.wantRune {
				t.Errorf("rune = %q, expected %q", cell.Rune, tc.wantRune)
			}
			if cell.HasBg != tc.wantBg {
				t.Errorf("HasBg = %v, expected %v", cell.HasBg, tc.wantBg)
			}
			if !cell.HasFg || cell.Fg != red {
				t.Errorf("fg = %+v, expected red", cell.Fg)
			}
			if s.GetCell(1, 0) != core.Blank {
				t.Errorf("neighbor cell lit without glow: %+v", s.GetCell(1, 0))
			}
		})
	}
}

func TestFillCircleGlowFades(t *testing.T) {
	c := New(8, 4)
	c.FillCircle(firework.Circle{X: 28, Y: 28, Radius: 1, Color: gray(1), Alpha: 1, Glow: 10})

	core3, lit := c.Dot(3, 3)
	if !lit || core3.R != 1 {
		t.Fatalf("core dot = %+v lit=%v, expected full white", core3, lit)
	}
	near, lit := c.Dot(4, 3)
	if !lit {
		t.Fatal("adjacent dot should carry the glow")
	}
	// 8px away: 0.35 * (1 - (8-1-4)/10)
	if want := 0.35 * 0.7; math.Abs(near.R-want) > 1e-9 {
		t.Errorf("adjacent glow = %f, expected %f", near.R, want)
	}
	if _, lit := c.Dot(6, 3); lit {
		t.Error("dot 24px away should be outside the glow")
	}
}

func TestFillCircleAdditive(t *testing.T) {
	c := New(2, 1)
	circle := firework.Circle{X: 4, Y: 4, Radius: 1, Color: gray(0.3), Alpha: 1}
	c.FillCircle(circle)
	c.FillCircle(circle)

	got, _ := c.Dot(0, 0)
	if math.Abs(got.R-0.6) > 1e-9 {
		t.Errorf("two overlapping circles = %f, expected 0.6", got.R)
	}

	for range 5 {
		c.FillCircle(circle)
	}
	got, _ = c.Dot(0, 0)
	if got.R != 1 {
		t.Errorf("saturated dot = %f, expected clamp to 1", got.R)
	}
}

func TestFillCircleSkipsInvisible(t *testing.T) {
	c := New(4, 2)
	c.FillCircle(firework.Circle{X: 4, Y: 4, Radius: 2, Color: gray(1), Alpha: 0, Glow: 10})
	c.FillCircle(firework.Circle{X: 4, Y: 4, Radius: 2, Color: gray(1), Alpha: -0.01, Glow: 10})
	c.FillCircle(firework.Circle{X: -500, Y: 900, Radius: 2, Color: gray(1), Alpha: 1, Glow: 10})
	if c.Lit() != 0 {
		t.Errorf("Lit() = %d, expected 0", c.Lit())
	}
}

func TestClear(t *testing.T) {
	c := New(4, 2)
	c.FillCircle(firework.Circle{X: 10, Y: 10, Radius: 2, Color: gray(1), Alpha: 1, Glow: 10})
	if c.Lit() == 0 {
		t.Fatal("expected lit dots")
	}
	c.Clear()
	if c.Lit() != 0 {
		t.Errorf("Lit() after Clear = %d", c.Lit())
	}
}

func TestPresentIntoSmallerScreen(t *testing.T) {
	c := New(10, 10)
	c.FillCircle(firework.Circle{X: 76, Y: 156, Radius: 3, Color: gray(1), Alpha: 1, Glow: 10})
	s := core.NewScreen(3, 2)
	c.Present(s)
	if s.String() != "   \n   " {
		t.Errorf("unexpected screen %q", s.String())
	}
}

func TestASCII(t *testing.T) {
	c := New(3, 2)
	if got := c.ASCII(); got != "   \n   " {
		t.Errorf("blank ASCII = %q", got)
	}

	c.FillCircle(firework.Circle{X: 12, Y: 20, Radius: 1, Color: gray(1), Alpha: 1})
	lines := strings.Split(c.ASCII(), "\n")
	if len(lines) != 2 || lines[1] != " @ " {
		t.Errorf("ASCII = %q, expected full brightness at cell (1, 1)", lines)
	}

	// Overlapping light saturates at the top of the ramp.
	for range 4 {
		c.FillCircle(firework.Circle{X: 12, Y: 20, Radius: 1, Color: gray(1), Alpha: 1})
	}
	if lines := strings.Split(c.ASCII(), "\n"); lines[1] != " @ " {
		t.Errorf("saturated ASCII = %q", lines)
	}
}

func TestCanvasAsDriverSurface(t *testing.T) {
	c := New(4, 4)
	d := firework.NewDriver(firework.NewSeededEngine(7), c)
	var pulse firework.Pulse
	if err := d.Start(&pulse); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	d.Resize(20, 6)
	d.Launch(80, 48, firework.DefaultParticleCount)
	pulse.Fire()

	if c.Cols() != 20 || c.Rows() != 6 {
		t.Errorf("canvas = %dx%d cells, expected 20x6", c.Cols(), c.Rows())
	}
	if c.Lit() == 0 {
		t.Error("expected the burst to light the canvas")
	}
}
