package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-animals/internal/assets"
	"github.com/vovakirdan/flappy-animals/internal/config"
	"github.com/vovakirdan/flappy-animals/internal/core"
	"github.com/vovakirdan/flappy-animals/internal/game"
)

func newTestModel(t *testing.T) (Model, *game.State) {
	t.Helper()
	store, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() error = %v", err)
	}
	cfg := config.Default()
	state := game.New(game.Options{Config: cfg, Assets: store, Seed: 1})
	return NewModel(state, cfg.Screen, lipgloss.NewRenderer(io.Discard)), state
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelStartsGameOnEnter(t *testing.T) {
	m, state := newTestModel(t)
	start := time.Now()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if state.Mode() != game.ModeMenu {
		t.Fatal("key applied before the tick")
	}

	m, cmd := update(t, m, TickMsg(start))
	if state.Mode() != game.ModePlaying {
		t.Errorf("mode = %s, want Playing", state.Mode())
	}
	if cmd == nil {
		t.Error("tick loop stopped")
	}
	if m.Quitting() {
		t.Error("model quitting")
	}
}

func TestModelLatestKeyWins(t *testing.T) {
	m, state := newTestModel(t)

	// Down then Up within one tick leaves the first option selected.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg(time.Now()))

	if got := state.Menu().Selected(); got != 0 {
		t.Errorf("selected = %d, want 0", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	update(t, m, TickMsg(time.Now()))
	if got := state.Menu().Selected(); got != 1 {
		t.Errorf("selected = %d, want 1", got)
	}
}

func TestModelElapsedTime(t *testing.T) {
	m, state := newTestModel(t)
	start := time.Now()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(start))

	// 50ms and then 30ms more: gravity runs once the total passes 75ms.
	m, _ = update(t, m, TickMsg(start.Add(50*time.Millisecond)))
	if v := state.Player().Velocity; v != 0 {
		t.Fatalf("velocity = %v after 50ms, want 0", v)
	}
	update(t, m, TickMsg(start.Add(130*time.Millisecond)))
	if v := state.Player().Velocity; v == 0 {
		t.Error("gravity did not run after 80ms of play")
	}
}

func TestModelQuitFromMenu(t *testing.T) {
	m, _ := newTestModel(t)

	for i := 0; i < 4; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg(time.Now()))

	if !m.Quitting() {
		t.Error("Quit Game did not stop the model")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestModelForceQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.Quitting() || cmd == nil {
		t.Error("ctrl+c did not quit")
	}
}

func TestModelTooSmall(t *testing.T) {
	m, _ := newTestModel(t)

	if m.TooSmall() {
		t.Error("TooSmall() before any size is known")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if !m.TooSmall() {
		t.Error("80x24 should be too small")
	}
	if !strings.Contains(m.View(), "terminal is 80x24") {
		t.Error("View() missing size warning")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 90})
	if m.TooSmall() {
		t.Error("200x90 should fit")
	}
}

func TestRenderPlainProfile(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.Print(0, 0, "ab")
	screen.SetCell(2, 0, core.ColorRed, core.ColorYellow, '|')
	screen.PrintColor(0, 1, core.ColorYellow, core.ColorBlack, "xyz")

	sr := NewScreenRenderer(lipgloss.NewRenderer(io.Discard))
	if got, want := sr.Render(screen), screen.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderCachesStyles(t *testing.T) {
	screen := core.NewScreen(4, 1)
	screen.SetCell(0, 0, core.ColorRed, core.ColorYellow, '|')
	screen.SetCell(2, 0, core.ColorRed, core.ColorYellow, '|')

	sr := NewScreenRenderer(lipgloss.NewRenderer(io.Discard))
	sr.Render(screen)

	// red/yellow and the blank white/black pair.
	if len(sr.styles) != 2 {
		t.Errorf("cached %d styles, want 2", len(sr.styles))
	}
}
