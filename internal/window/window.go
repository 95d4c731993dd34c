// Package window shows the greeting in a desktop window on Ebitengine. The
// firework frame is recorded by a firework.Recorder and replayed as
// pre-rendered sprites with additive blending.
package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-hbd/internal/firework"
)

// Sprite sizes. The core sprite is a solid disc and is scaled to each
// particle's radius; the glow sprite is a radial falloff.
const (
	coreRadius = 16
	glowRadius = 32

	glowStrength = 0.35

	// debugGlyphW and debugGlyphH are the debug font cell size.
	debugGlyphW = 6
	debugGlyphH = 16
)

// Game implements ebiten.Game.
type Game struct {
	scene *scene
	core  *ebiten.Image
	glow  *ebiten.Image
}

// NewGame creates the window game.
func NewGame(opts Options) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 960, 540
	}
	return &Game{
		scene: newScene(opts),
		core:  coreSprite(),
		glow:  glowSprite(),
	}
}

func coreSprite() *ebiten.Image {
	img := ebiten.NewImage(2*coreRadius, 2*coreRadius)
	vector.DrawFilledCircle(img, coreRadius, coreRadius, coreRadius, color.White, true)
	return img
}

func glowSprite() *ebiten.Image {
	const size = 2 * glowRadius
	pix := make([]byte, size*size*4)
	for y := range size {
		for x := range size {
			d := math.Hypot(float64(x)+0.5-glowRadius, float64(y)+0.5-glowRadius) / glowRadius
			if d >= 1 {
				continue
			}
			// Premultiplied white.
			v := byte(255 * glowStrength * (1 - d) * (1 - d))
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// Update handles input and advances one frame.
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.scene.launchGrand()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.scene.click(ebiten.CursorPosition())
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		g.scene.click(ebiten.TouchPosition(id))
	}

	g.scene.tick()
	return nil
}

// Draw replays the recorded frame. Ebitengine clears the screen before
// every Draw, so nothing repaints a background.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, c := range g.scene.frame.Circles {
		if c.Glow > 0 {
			screen.DrawImage(g.glow, spriteOptions(c, glowRadius, c.Radius+c.Glow))
		}
		screen.DrawImage(g.core, spriteOptions(c, coreRadius, c.Radius))
	}
	g.drawOverlay(screen)
}

// spriteOptions places a sprite of spriteRadius so it covers radius pixels
// around the circle, tinted premultiplied and blended additively.
func spriteOptions(c firework.Circle, spriteRadius, radius float64) *ebiten.DrawImageOptions {
	a := float32(c.Alpha)
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
	op.GeoM.Translate(-spriteRadius, -spriteRadius)
	op.GeoM.Scale(radius/spriteRadius, radius/spriteRadius)
	op.GeoM.Translate(c.X, c.Y)
	op.ColorScale.Scale(float32(c.Color.R)*a, float32(c.Color.G)*a, float32(c.Color.B)*a, a)
	return op
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	lines := g.scene.overlay()
	w, h := g.scene.width, g.scene.height
	y := (h - len(lines)*debugGlyphH) / 2
	for i, line := range lines {
		x := (w - len(line)*debugGlyphW) / 2
		ebitenutil.DebugPrintAt(screen, line, x, y+i*debugGlyphH)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("bursts %d  click: firework  space: grand  q: quit",
		g.scene.driver.Engine().BurstCount()), 4, h-debugGlyphH)
}

// Layout follows the window size; the driver sees the change on the next
// tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	game := NewGame(opts)

	title := opts.Title
	if title == "" {
		title = "Happy Birthday"
	}
	ebiten.SetWindowSize(game.scene.width, game.scene.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.scene.cfg.TickRate)
	ebiten.SetScreenClearedEveryFrame(true)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
