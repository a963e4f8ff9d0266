package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-animals/internal/config"
	"github.com/vovakirdan/flappy-animals/internal/core"
	"github.com/vovakirdan/flappy-animals/internal/game"
)

// Model is the Bubble Tea model that hosts one game.
// Each tick it hands the game the elapsed time and the latest key pressed
// since the previous tick.
type Model struct {
	state    *game.State
	screen   *core.Screen
	renderer *ScreenRenderer
	keys     KeyMap
	help     help.Model
	latch    core.KeyLatch
	fps      int
	title    string
	lastTick time.Time
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for state drawing into a screen of the configured
// size. A nil renderer uses the default one.
func NewModel(state *game.State, cfg config.ScreenConfig, r *lipgloss.Renderer) Model {
	return Model{
		state:    state,
		screen:   core.NewScreen(cfg.Width, cfg.Height),
		renderer: NewScreenRenderer(r),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		fps:      cfg.FPS,
		title:    cfg.Title,
	}
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.title), tickCmd(m.fps))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey latches game keys until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.latch.Push(m.keys.MapKey(msg))
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := 1000.0 / float64(m.fps)
	if !m.lastTick.IsZero() {
		elapsed = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	m.state.Tick(m.screen, elapsed, m.latch.Take())

	if m.state.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	if m.TooSmall() {
		footer = fmt.Sprintf("terminal is %dx%d, the game needs %dx%d", m.width, m.height, m.screen.Width(), m.screen.Height()+1)
	}
	return m.renderer.Render(m.screen) + "\n" + footer
}

// TooSmall reports whether the last known terminal size cannot show the
// whole screen plus the footer line.
func (m Model) TooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.screen.Width() || m.height < m.screen.Height()+1
}

// Quitting reports whether the model asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for state and blocks until it exits.
func Run(state *game.State, cfg config.ScreenConfig) error {
	p := tea.NewProgram(
		NewModel(state, cfg, nil),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
