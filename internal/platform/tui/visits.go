package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hbd/internal/storage"
)

// Visit log layout constants
const (
	maxVisits       = 200 // Max visits to load
	visitChromeRows = 8   // Rows taken by title, stats, borders and help
)

// VisitLogKeyMap defines the key bindings for the visit log.
type VisitLogKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k VisitLogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k VisitLogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Refresh, k.Quit},
	}
}

// DefaultVisitLogKeyMap returns default key bindings.
func DefaultVisitLogKeyMap() VisitLogKeyMap {
	return VisitLogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "newest"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "oldest"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// VisitSource is the part of the store the visit log reads.
type VisitSource interface {
	RecentVisits(limit int) ([]storage.Visit, error)
	Stats() (*storage.VisitStats, error)
}

// VisitLogModel is the Bubble Tea model for the visit log screen.
type VisitLogModel struct {
	source   VisitSource
	visits   []storage.Visit
	stats    *storage.VisitStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     VisitLogKeyMap
	width    int
	height   int
	quitting bool
}

// NewVisitLogModel creates a new visit log model.
func NewVisitLogModel(source VisitSource, width, height int) VisitLogModel {
	h := help.New()
	h.Width = width

	m := VisitLogModel{
		source: source,
		keys:   DefaultVisitLogKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with columns sized to the terminal.
func (m *VisitLogModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Viewer", Width: 14},
		{Title: "From", Width: 22},
		{Title: "Started", Width: 16},
		{Title: "Length", Width: 9},
		{Title: "Bursts", Width: 7},
	}

	// Give spare width to the remote address column
	used := 0
	for _, c := range columns {
		used += c.Width + 2 // Cell padding
	}
	if spare := m.width - 4 - used; spare > 0 {
		columns[1].Width += min(spare, 24)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-visitChromeRows, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads visits and stats from the source.
func (m *VisitLogModel) load() {
	m.loadErr = nil
	if m.source == nil {
		m.visits, m.stats = nil, nil
		m.updateTableRows()
		return
	}

	visits, err := m.source.RecentVisits(maxVisits)
	if err != nil {
		m.loadErr = err
		visits = nil
	}
	m.visits = visits

	stats, err := m.source.Stats()
	if err != nil && m.loadErr == nil {
		m.loadErr = err
	}
	m.stats = stats

	m.updateTableRows()
}

// visitRow formats one visit as a table row.
func visitRow(v storage.Visit) table.Row {
	length := "live"
	if !v.Open() {
		length = v.Duration().Round(time.Second).String()
	}
	return table.Row{
		v.Viewer,
		v.Remote,
		v.StartedAt.Local().Format("Jan 02 15:04:05"),
		length,
		fmt.Sprintf("%d", v.Bursts),
	}
}

// updateTableRows updates the table with the loaded visits.
func (m *VisitLogModel) updateTableRows() {
	rows := make([]table.Row, len(m.visits))
	for i, v := range m.visits {
		rows[i] = visitRow(v)
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the visit log model.
func (m VisitLogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the visit log.
func (m VisitLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the visit log.
func (m VisitLogModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	b.WriteString(titleStyle.Render(centerText("VISITORS", m.width)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	// Help bar
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summary is the one-line stats header.
func (m VisitLogModel) summary() string {
	if m.loadErr != nil {
		return "could not read visit log: " + m.loadErr.Error()
	}
	if m.stats == nil || m.stats.Visits == 0 {
		return "no visits yet"
	}
	return fmt.Sprintf("%d visits • %d viewers • %d fireworks • last %s",
		m.stats.Visits, m.stats.Viewers, m.stats.Bursts,
		m.stats.LastVisit.Local().Format("Jan 02 15:04"))
}

// renderTableContent renders the table or empty message.
func (m VisitLogModel) renderTableContent() string {
	if len(m.visits) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nobody has come by yet.\nRun 'hbd serve' and share the address!")
	}

	return m.table.View()
}

// centerText pads text on the left to center it in width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// RunVisitLog runs the visit log screen.
func RunVisitLog(source VisitSource, width, height int) error {
	p := tea.NewProgram(
		NewVisitLogModel(source, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
