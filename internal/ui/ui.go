// Package ui provides the live terminal view using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-nightsky/internal/logging"
	"github.com/litescript/ls-nightsky/internal/observation"
	"github.com/litescript/ls-nightsky/internal/report"
	"github.com/litescript/ls-nightsky/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewNow ViewMode = iota
	ViewNight
	ViewPlanets
	viewCount
)

var viewNames = []string{"Now", "Night", "Planets"}

// Step is how far "+" and "-" move the instant.
const Step = time.Hour

// TickMsg triggers a refresh.
type TickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	obs     *observation.Observation
	styles  report.Styles
	log     *logging.Logger
	clock   func() time.Time
	refresh time.Duration

	viewMode ViewMode
	follow   bool // instant tracks the clock
	width    int
	height   int
	ready    bool
	err      error
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the source of "now".
func WithClock(clock func() time.Time) Option {
	return func(m *Model) {
		m.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// New creates the live view. When follow is true the instant is reset to
// the clock on every refresh.
func New(obs *observation.Observation, styles report.Styles, refresh time.Duration, follow bool, opts ...Option) Model {
	m := Model{
		obs:     obs,
		styles:  styles,
		log:     logging.Discard(),
		clock:   time.Now,
		refresh: refresh,
		follow:  follow,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.refresh)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "+", "=":
			m.follow = false
			m.setTime(m.obs.Time().Add(Step))
		case "-", "_":
			m.follow = false
			m.setTime(m.obs.Time().Add(-Step))
		case "n":
			m.follow = true
			m.setTime(m.clock())
		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount
			m.recompute()
		case "1":
			m.viewMode = ViewNow
		case "2":
			m.viewMode = ViewNight
			m.recompute()
		case "3":
			m.viewMode = ViewPlanets
			m.recompute()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		if m.follow {
			m.setTime(time.Time(msg))
		}
		return m, tickCmd(m.refresh)
	}

	return m, nil
}

func (m *Model) setTime(t time.Time) {
	if err := m.obs.SetTimeInstant(t); err != nil {
		m.err = err
		return
	}
	m.recompute()
}

// recompute runs the stages the current view shows. Night events only
// change when the instant crosses local noon, so a current result is kept.
func (m *Model) recompute() {
	m.err = nil
	stages := []func() error{m.obs.ComputeSky, m.obs.ComputeSunMoon}
	switch m.viewMode {
	case ViewNight:
		stages = append(stages, m.obs.SetNightEvents)
	case ViewPlanets:
		stages = append(stages, m.obs.ComputePlanets)
	}
	for _, stage := range stages {
		if err := stage(); err != nil {
			m.err = err
			m.log.Warn("live refresh failed", logging.Err(err))
			return
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Writes to a strings.Builder cannot fail.
	var b strings.Builder
	switch m.viewMode {
	case ViewNow:
		_ = report.WriteNow(&b, m.obs, m.styles)
	case ViewNight:
		_ = report.WriteNight(&b, m.obs, m.styles)
	case ViewPlanets:
		_ = report.WritePlanets(&b, m.obs, m.styles)
	}

	return m.renderHeader() + "\n\n" + b.String() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	parts := []string{activeStyle.Render("ls-nightsky " + version.Version)}
	for i, name := range viewNames {
		tab := fmt.Sprintf("[%d] %s", i+1, name)
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	var status string
	switch {
	case m.err != nil:
		status = errorStyle.Render("ERROR: " + m.err.Error())
	case m.follow:
		status = dimStyle.Render(fmt.Sprintf("live, refresh every %s", m.refresh))
	default:
		offset := m.obs.Time().Sub(m.clock()).Round(time.Minute)
		status = dimStyle.Render(fmt.Sprintf("paused at %+.1f h from now", offset.Hours()))
	}

	help := dimStyle.Render("+/-: ±1h | n: now | tab: view | q: quit")
	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

// Following reports whether the instant tracks the clock.
func (m Model) Following() bool { return m.follow }

// Mode returns the active view.
func (m Model) Mode() ViewMode { return m.viewMode }

// Err returns the last refresh error.
func (m Model) Err() error { return m.err }

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
