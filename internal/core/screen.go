package core

import (
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one terminal character with optional truecolor foreground and
// background. Cells without colors render with the terminal defaults.
type Cell struct {
	Rune  rune
	Fg    colorful.Color
	Bg    colorful.Color
	HasFg bool
	HasBg bool
	Bold  bool
}

// Blank is an uncolored space.
var Blank = Cell{Rune: ' '}

// Style returns the cell's styling with the rune stripped, for grouping
// runs of identically styled cells.
func (c Cell) Style() Cell {
	c.Rune = 0
	return c
}

// Screen is a 2D cell buffer. Drawing code writes cells; the platform layer
// turns the buffer into styled terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Blank
		}
	}
}

// InBounds reports whether (x, y) is a valid cell.
func (s *Screen) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns Blank for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.InBounds(x, y) {
		return Blank
	}
	return s.cells[y][x]
}

// DrawStyledText writes text horizontally from (x, y) using style's colors
// for every character, clipped at the screen edges. The background of cells
// that style leaves uncolored is kept, so text can sit on top of firework
// pixels.
func (s *Screen) DrawStyledText(x, y int, text string, style Cell) {
	i := 0
	for _, r := range text {
		cx := x + i
		i++
		if !s.InBounds(cx, y) {
			continue
		}
		c := style
		c.Rune = r
		if !style.HasBg {
			under := s.cells[y][cx]
			c.Bg, c.HasBg = under.Bg, under.HasBg
			if under.Rune == '▀' || under.Rune == '▄' {
				// Half blocks carry their lit half in Fg.
				c.Bg, c.HasBg = under.Fg, under.HasFg
			}
		}
		s.cells[y][cx] = c
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, style Cell) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawStyledText(x, y, text, style)
}

// DrawRect fills a rectangular area with the given cell.
func (s *Screen) DrawRect(r Rect, fill Cell) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, fill)
		}
	}
}

// DrawBox draws a rounded box outline in the given style.
func (s *Screen) DrawBox(r Rect, style Cell) {
	if r.W < 2 || r.H < 2 {
		return
	}
	put := func(x, y int, ch rune) {
		c := style
		c.Rune = ch
		s.SetCell(x, y, c)
	}

	put(r.X, r.Y, '╭')
	put(r.Right()-1, r.Y, '╮')
	put(r.X, r.Bottom()-1, '╰')
	put(r.Right()-1, r.Bottom()-1, '╯')

	for x := r.X + 1; x < r.Right()-1; x++ {
		put(x, r.Y, '─')
		put(x, r.Bottom()-1, '─')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		put(r.X, y, '│')
		put(r.Right()-1, y, '│')
	}
}

// String converts the screen buffer to plain text, dropping colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
