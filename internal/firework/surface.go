package firework

import "github.com/lucasb-eyer/go-colorful"

// Circle is one filled-circle draw call: a disc of Radius pixels at (X, Y)
// in Color at opacity Alpha, surrounded by a soft glow of Glow pixels in the
// same color.
type Circle struct {
	X, Y   float64
	Radius float64
	Color  colorful.Color
	Alpha  float64
	Glow   float64
}

// Surface is a 2-D drawing target. Implementations composite draw calls
// additively: overlapping circles brighten rather than occlude, so the
// order of FillCircle calls within a frame does not matter.
type Surface interface {
	// Clear erases the previous frame without painting a background.
	Clear()

	// FillCircle draws one particle.
	FillCircle(c Circle)
}

// Resizer is implemented by surfaces whose pixel dimensions follow the
// host viewport. Width and height are in host units (terminal cells for
// the terminal canvas, pixels for windows).
type Resizer interface {
	Resize(width, height int)
}

// Recorder is a Surface that keeps the draw calls of the current frame.
// Tests inspect it directly; the window front end replays it.
type Recorder struct {
	Circles []Circle // Draw calls since the last Clear
	Clears  int      // Number of Clear calls
	Width   int      // Last size passed to Resize
	Height  int
	Resizes int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear drops the recorded frame.
func (r *Recorder) Clear() {
	r.Clears++
	r.Circles = r.Circles[:0]
}

// FillCircle records a draw call.
func (r *Recorder) FillCircle(c Circle) {
	r.Circles = append(r.Circles, c)
}

// Resize records the new viewport.
func (r *Recorder) Resize(width, height int) {
	r.Width = width
	r.Height = height
	r.Resizes++
}

var (
	_ Surface = (*Recorder)(nil)
	_ Resizer = (*Recorder)(nil)
)
