package game

import (
	"github.com/vovakirdan/flappy-animals/internal/assets"
	"github.com/vovakirdan/flappy-animals/internal/config"
	"github.com/vovakirdan/flappy-animals/internal/core"
)

// Panel is one screen of the menu.
type Panel int

const (
	PanelMain Panel = iota
	PanelBackground
	PanelPlayer
	PanelObstacle
)

// String returns a human-readable name for the panel.
func (p Panel) String() string {
	switch p {
	case PanelMain:
		return "Main"
	case PanelBackground:
		return "Background"
	case PanelPlayer:
		return "Player"
	case PanelObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// MaxIndex returns the highest selectable index on the panel.
func (p Panel) MaxIndex() int {
	switch p {
	case PanelMain:
		return len(mainOptions) - 1
	case PanelBackground:
		return len(assets.BackgroundSkins) // skins + Back
	case PanelPlayer:
		return len(assets.PlayerSkins) // skins + Back
	case PanelObstacle:
		return 1 // spacing row + Back
	default:
		return 0
	}
}

// Main panel options, in display order.
const (
	mainStart = iota
	mainBackground
	mainPlayer
	mainObstacle
	mainQuit
)

var mainOptions = []string{
	"Start Game",
	"Background Style",
	"Player Style",
	"Obstacle Distance",
	"Quit Game",
}

// MenuAction is what the menu asks the controller to do after a key press.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionStart
	MenuActionQuit
)

// Menu tracks the active panel and the selected row.
// The selected row is always within [0, Panel().MaxIndex()].
type Menu struct {
	panel    Panel
	selected int
}

// Panel returns the active panel.
func (m Menu) Panel() Panel {
	return m.panel
}

// Selected returns the selected row on the active panel.
func (m Menu) Selected() int {
	return m.selected
}

// HandleKey applies one key event, mutating settings where the panel allows it.
func (m *Menu) HandleKey(key core.Key, settings *Settings, diff config.Difficulty) MenuAction {
	switch key {
	case core.KeyUp:
		if m.selected > 0 {
			m.selected--
		}

	case core.KeyDown:
		if m.selected < m.panel.MaxIndex() {
			m.selected++
		}

	case core.KeyReturn:
		return m.confirm(settings)

	case core.KeyLeft:
		if m.panel == PanelObstacle && m.selected == 0 {
			settings.ObstacleDistance = diff.ClampSpacing(settings.ObstacleDistance - diff.SpacingStep())
		}

	case core.KeyRight:
		if m.panel == PanelObstacle && m.selected == 0 {
			settings.ObstacleDistance = diff.ClampSpacing(settings.ObstacleDistance + diff.SpacingStep())
		}

	case core.KeyEscape:
		m.panel = PanelMain
		m.selected = 0
	}

	return MenuActionNone
}

// confirm handles Return on the active panel.
func (m *Menu) confirm(settings *Settings) MenuAction {
	switch m.panel {
	case PanelMain:
		switch m.selected {
		case mainStart:
			return MenuActionStart
		case mainBackground:
			m.open(PanelBackground)
		case mainPlayer:
			m.open(PanelPlayer)
		case mainObstacle:
			m.open(PanelObstacle)
		case mainQuit:
			return MenuActionQuit
		}

	case PanelBackground:
		if m.selected < len(assets.BackgroundSkins) {
			settings.Background = assets.BackgroundSkins[m.selected]
		} else {
			m.back()
		}

	case PanelPlayer:
		if m.selected < len(assets.PlayerSkins) {
			settings.Player = assets.PlayerSkins[m.selected]
		} else {
			m.back()
		}

	case PanelObstacle:
		if m.selected == 1 {
			m.back()
		}
	}

	return MenuActionNone
}

// open descends into a sub-panel with the first row selected.
func (m *Menu) open(p Panel) {
	m.panel = p
	m.selected = 0
}

// back returns to the main panel with the entry that led here selected.
func (m *Menu) back() {
	switch m.panel {
	case PanelBackground:
		m.selected = mainBackground
	case PanelPlayer:
		m.selected = mainPlayer
	case PanelObstacle:
		m.selected = mainObstacle
	}
	m.panel = PanelMain
}
