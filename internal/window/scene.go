package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hbd/internal/core"
	"github.com/vovakirdan/tui-hbd/internal/firework"
	"github.com/vovakirdan/tui-hbd/internal/greeting"
)

// Options configures the desktop window.
type Options struct {
	Title  string
	Width  int // Initial window size in pixels
	Height int

	Config core.RuntimeConfig
	Card   greeting.Card
	Gate   greeting.Gate
	Logger *log.Logger

	// OnLaunch runs after every launched burst.
	OnLaunch func(*firework.Burst)
	// Now replaces the clock, for the unlock gate.
	Now func() time.Time
}

// scene is the window state that does not depend on Ebitengine: the
// driver, the recorded frame and the gate.
type scene struct {
	cfg    core.RuntimeConfig
	pulse  *firework.Pulse
	driver *firework.Driver
	frame  *firework.Recorder

	card   greeting.Card
	gate   greeting.Gate
	now    func() time.Time
	locked bool
	logger *log.Logger

	width, height int
}

func newScene(opts Options) *scene {
	cfg := opts.Config.Normalized()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	frame := firework.NewRecorder()
	driver := firework.NewDriver(
		firework.NewSeededEngine(cfg.Seed),
		frame,
		firework.WithClickCount(cfg.ParticlesPerClick),
		firework.WithLaunchHook(opts.OnLaunch),
	)
	pulse := &firework.Pulse{}
	if err := driver.Start(pulse); err != nil {
		logger.Error("driver start", "error", err)
	}

	return &scene{
		cfg:    cfg,
		pulse:  pulse,
		driver: driver,
		frame:  frame,
		card:   opts.Card,
		gate:   opts.Gate,
		now:    now,
		locked: opts.Gate.Locked(now()),
		logger: logger,
		width:  opts.Width,
		height: opts.Height,
	}
}

// click launches a burst at a window pixel.
func (s *scene) click(x, y int) {
	if s.locked {
		return
	}
	s.driver.Click(float64(x), float64(y))
}

// launchGrand launches a keyboard burst at the window center.
func (s *scene) launchGrand() {
	if s.locked {
		return
	}
	s.driver.Launch(float64(s.width)/2, float64(s.height)/2, s.cfg.GrandParticles)
}

// resize records a new layout size; the driver applies it on the next tick.
func (s *scene) resize(w, h int) {
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.driver.Resize(w, h)
}

// tick runs one frame.
func (s *scene) tick() {
	if locked := s.gate.Locked(s.now()); locked != s.locked {
		s.locked = locked
		if !locked {
			s.logger.Info("greeting unlocked")
		}
	}
	s.pulse.Fire()
}

// overlay returns the text drawn over the fireworks.
func (s *scene) overlay() []string {
	if s.locked {
		return []string{
			"Something is waiting for you",
			"",
			greeting.FormatRemaining(s.gate.Remaining(s.now())),
		}
	}
	return s.card.Lines()
}
