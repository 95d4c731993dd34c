package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hbd/internal/canvas"
	"github.com/vovakirdan/tui-hbd/internal/core"
	"github.com/vovakirdan/tui-hbd/internal/firework"
	"github.com/vovakirdan/tui-hbd/internal/greeting"
)

// statusDuration is how long a status message replaces the help footer.
const statusDuration = 3 * time.Second

// newHelp builds the help footer on the viewer's renderer.
func newHelp(r *lipgloss.Renderer, width int) help.Model {
	h := help.New()
	h.Width = width
	key := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	desc := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
	sep := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})
	h.Styles = help.Styles{
		Ellipsis:       sep,
		ShortKey:       key,
		ShortDesc:      desc,
		ShortSeparator: sep,
		FullKey:        key,
		FullDesc:       desc,
		FullSeparator:  sep,
	}
	return h
}

// Options configures a greeting Model.
type Options struct {
	Config core.RuntimeConfig
	Card   greeting.Card
	Gate   greeting.Gate

	// Renderer styles output for one terminal; nil means the local one.
	Renderer *lipgloss.Renderer
	Logger   *log.Logger

	// OnLaunch runs after every burst launched from this screen.
	OnLaunch func(*firework.Burst)

	// Now replaces the clock, for the unlock gate.
	Now func() time.Time

	// ScreenshotDir receives ctrl+s captures.
	ScreenshotDir string
}

// Model is the Bubble Tea model of the greeting screen. The top rows show
// the fireworks with the card on top; the last row is the help footer.
type Model struct {
	config core.RuntimeConfig

	pulse  *firework.Pulse
	driver *firework.Driver
	canvas *canvas.Canvas
	screen *core.Screen

	card greeting.Card
	gate greeting.Gate
	now  func() time.Time

	keys    KeyMap
	help    help.Model
	painter *Painter
	footer  lipgloss.Style
	logger  *log.Logger

	screenshotDir string
	status        string
	statusUntil   time.Time

	locked   bool
	quitting bool
}

// NewModel creates a greeting model with its own engine and driver.
func NewModel(opts Options) Model {
	cfg := opts.Config.Normalized()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	rows := bodyRows(cfg.ScreenH)
	cv := canvas.New(cfg.ScreenW, rows)
	driver := firework.NewDriver(
		firework.NewSeededEngine(cfg.Seed),
		cv,
		firework.WithClickCount(cfg.ParticlesPerClick),
		firework.WithLaunchHook(opts.OnLaunch),
	)
	pulse := &firework.Pulse{}
	if err := driver.Start(pulse); err != nil {
		logger.Error("driver start", "error", err)
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	return Model{
		config:        cfg,
		pulse:         pulse,
		driver:        driver,
		canvas:        cv,
		screen:        core.NewScreen(cfg.ScreenW, rows),
		card:          opts.Card,
		gate:          opts.Gate,
		now:           now,
		keys:          DefaultKeyMap(),
		help:          newHelp(renderer, cfg.ScreenW),
		painter:       NewPainter(renderer),
		footer:        renderer.NewStyle().Foreground(lipgloss.Color("241")),
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
		locked:        opts.Gate.Locked(now()),
	}
}

// bodyRows is the firework area height for a terminal of h rows.
func bodyRows(h int) int {
	return max(h-1, 0)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Launch):
		if !m.locked {
			x, y := m.canvas.Center()
			m.driver.Launch(x, y, m.config.GrandParticles)
		}
	}
	return m, nil
}

// handleMouse launches a firework at a left click inside the body.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.locked || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	body := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
	if !body.Contains(msg.X, msg.Y) {
		return m, nil
	}
	m.driver.Click(canvas.CellCenter(msg.X, msg.Y))
	return m, nil
}

// handleResize processes window resize events. The canvas follows on the
// next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	rows := bodyRows(msg.Height)
	m.screen.Resize(msg.Width, rows)
	m.driver.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.now()
	if locked := m.gate.Locked(now); locked != m.locked {
		m.locked = locked
		if !locked {
			m.logger.Info("greeting unlocked", "at", now.Format(time.RFC3339))
		}
	}
	if m.status != "" && now.After(m.statusUntil) {
		m.status = ""
	}

	m.pulse.Fire()
	return m, tickCmd(m.config.TickRate)
}

// compose draws the current frame into the screen buffer.
func (m *Model) compose() {
	rows := m.screen.Height()
	if m.locked {
		m.screen.Clear()
		greeting.DrawCountdown(m.screen, rows, m.gate, m.now())
		return
	}
	m.canvas.Present(m.screen)
	m.card.Draw(m.screen, rows)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.compose()

	dir := m.screenshotDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "hbd-screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot directory", "dir", dir, "error", err)
		m.setStatus("screenshot failed")
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("hbd_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "path", path, "error", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = m.now().Add(statusDuration)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.compose()
	footer := m.status
	if footer == "" {
		footer = "click: firework • " + m.help.View(m.keys)
	}
	return m.painter.Render(m.screen) + "\n" + m.footer.Render(footer)
}

// Driver returns the firework driver of this screen.
func (m Model) Driver() *firework.Driver {
	return m.driver
}

// Locked reports whether the countdown is showing.
func (m Model) Locked() bool {
	return m.locked
}

// Screen returns the composed body of the last frame.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Run starts the Bubble Tea program for the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks launch fireworks
	)

	_, err := p.Run()
	return err
}
