package firework

import "errors"

// ErrAlreadyRunning is returned by Start on a driver that is already running.
var ErrAlreadyRunning = errors.New("firework: driver already running")

// State is the driver lifecycle state.
type State int

const (
	// StateIdle means no tick source is driving the engine yet.
	StateIdle State = iota
	// StateRunning means every tick advances and renders the engine. There is
	// no way back to idle.
	StateRunning
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// TickSource delivers display frames. Each registered callback is invoked
// once per frame on the host's single event loop.
type TickSource interface {
	OnTick(fn func())
}

// Pulse is a TickSource fired explicitly by its owner: the Bubble Tea model
// fires it on every tick message, the window fires it from Update, tests and
// the preview command fire it in a loop.
type Pulse struct {
	callbacks []func()
}

// OnTick registers fn to run on every Fire.
func (p *Pulse) OnTick(fn func()) {
	p.callbacks = append(p.callbacks, fn)
}

// Fire delivers one frame to every callback.
func (p *Pulse) Fire() {
	for _, fn := range p.callbacks {
		fn()
	}
}

// FireN delivers n frames.
func (p *Pulse) FireN(n int) {
	for range n {
		p.Fire()
	}
}

// viewport is a pending resize.
type viewport struct {
	width, height int
}

// Driver runs an engine against a surface once per frame and turns pointer
// clicks into bursts.
type Driver struct {
	engine  *Engine
	surface Surface
	state   State

	clickCount int
	originX    float64
	originY    float64

	width, height int
	pending       *viewport

	ticks    uint64
	launched int
	onLaunch func(*Burst)
}

// Option configures a Driver.
type Option func(*Driver)

// WithClickCount sets the particle count of click launches. Negative counts
// are clamped to zero.
func WithClickCount(n int) Option {
	return func(d *Driver) {
		d.clickCount = max(n, 0)
	}
}

// WithOrigin places the surface's top-left corner at (x, y) in host
// coordinates. Clicks are translated by this offset.
func WithOrigin(x, y float64) Option {
	return func(d *Driver) {
		d.originX = x
		d.originY = y
	}
}

// WithLaunchHook registers fn to run after every launched burst.
func WithLaunchHook(fn func(*Burst)) Option {
	return func(d *Driver) {
		d.onLaunch = fn
	}
}

// NewDriver creates an idle driver.
func NewDriver(engine *Engine, surface Surface, opts ...Option) *Driver {
	d := &Driver{
		engine:     engine,
		surface:    surface,
		clickCount: DefaultParticleCount,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start subscribes the driver to src and moves it to StateRunning.
func (d *Driver) Start(src TickSource) error {
	if d.state == StateRunning {
		return ErrAlreadyRunning
	}
	src.OnTick(d.Tick)
	d.state = StateRunning
	return nil
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Tick applies a pending resize, advances the engine one frame and renders
// it.
func (d *Driver) Tick() {
	if d.pending != nil {
		if r, ok := d.surface.(Resizer); ok {
			r.Resize(d.pending.width, d.pending.height)
		}
		d.width, d.height = d.pending.width, d.pending.height
		d.pending = nil
	}

	d.engine.AdvanceFrame()
	d.engine.RenderFrame(d.surface)
	d.ticks++
}

// Click launches a standard burst at a host-space coordinate.
func (d *Driver) Click(hostX, hostY float64) *Burst {
	return d.Launch(hostX-d.originX, hostY-d.originY, d.clickCount)
}

// Launch spawns a burst of count particles at surface-local (x, y).
func (d *Driver) Launch(x, y float64, count int) *Burst {
	b := d.engine.SpawnBurst(x, y, count)
	d.launched++
	if d.onLaunch != nil {
		d.onLaunch(b)
	}
	return b
}

// Resize records a new viewport size. The surface is resized at the start
// of the next tick, before it is rendered.
func (d *Driver) Resize(width, height int) {
	d.pending = &viewport{width: width, height: height}
}

// Size returns the viewport size applied by the last tick.
func (d *Driver) Size() (width, height int) {
	return d.width, d.height
}

// Engine returns the driven engine.
func (d *Driver) Engine() *Engine {
	return d.engine
}

// Ticks returns the number of frames run.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Launched returns the number of bursts launched through the driver.
func (d *Driver) Launched() int {
	return d.launched
}
