package firework

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// paletteHex lists the burst colors in pick order.
var paletteHex = []string{"#ff5733", "#ffbd33", "#33ff57", "#3357ff", "#f033ff"}

// Palette is the fixed set of particle colors.
var Palette = mustParsePalette(paletteHex)

func mustParsePalette(hexes []string) []colorful.Color {
	colors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("firework: bad palette color %q: %v", h, err))
		}
		colors[i] = c
	}
	return colors
}

// PaletteIndex returns the palette position of c, or -1 if c is not a
// palette color.
func PaletteIndex(c colorful.Color) int {
	for i, p := range Palette {
		if p == c {
			return i
		}
	}
	return -1
}
