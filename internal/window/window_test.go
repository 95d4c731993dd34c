package window

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-hbd/internal/firework"
)

func TestSpriteOptions(t *testing.T) {
	c := firework.Circle{
		X: 100, Y: 50, Radius: 2,
		Color: colorful.Color{R: 1, G: 0.5, B: 0},
		Alpha: 0.5, Glow: firework.GlowRadius,
	}
	op := spriteOptions(c, glowRadius, c.Radius+c.Glow)

	if op.Blend != ebiten.BlendLighter {
		t.Error("sprites should blend additively")
	}

	// Sprite center lands on the particle, sprite edge on the glow edge.
	if x, y := op.GeoM.Apply(glowRadius, glowRadius); x != 100 || y != 50 {
		t.Errorf("center maps to (%v, %v), expected (100, 50)", x, y)
	}
	if x, _ := op.GeoM.Apply(2*glowRadius, glowRadius); math.Abs(x-112) > 1e-9 {
		t.Errorf("edge maps to x=%v, expected 112", x)
	}

	// Premultiplied tint: color channels carry the alpha.
	cs := op.ColorScale
	if cs.R() != 0.5 || cs.G() != 0.25 || cs.B() != 0 || cs.A() != 0.5 {
		t.Errorf("color scale = (%v, %v, %v, %v)", cs.R(), cs.G(), cs.B(), cs.A())
	}
}
