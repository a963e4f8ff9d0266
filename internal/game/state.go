// Package game implements Flappy Animals: avatar physics, obstacle generation
// and collision, the scrolling background, the settings menu and the top-level
// Menu/Playing/End mode controller.
//
// The game is a pure, single-threaded simulation. A host calls Tick once per
// rendered frame with the elapsed time and at most one key, then presents the
// cell screen the game drew into.
package game

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-animals/internal/assets"
	"github.com/vovakirdan/flappy-animals/internal/config"
	"github.com/vovakirdan/flappy-animals/internal/core"
)

// Mode is the top-level state of the game.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// HighScoreStore persists the best score between runs.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// RunResult describes one finished run.
type RunResult struct {
	Score           int
	PlayerSkin      string
	BackgroundSkin  string
	ObstacleSpacing int
	NewHighScore    bool
}

// RunRecorder keeps a history of finished runs.
type RunRecorder interface {
	RecordRun(r RunResult) error
}

// Sounds plays the game's sound effects.
type Sounds interface {
	Flap()
	Crash()
}

// Options wires a State to its configuration and collaborators.
// Only Config and Assets are required.
type Options struct {
	Config    config.Config
	Assets    *assets.Store
	HighScore HighScoreStore
	History   RunRecorder
	Sounds    Sounds
	Logger    *log.Logger
	Seed      int64
}

// State is the single owner of everything the game mutates.
type State struct {
	cfg        config.Config
	difficulty config.Difficulty
	assets     *assets.Store
	highScores HighScoreStore
	history    RunRecorder
	sounds     Sounds
	logger     *log.Logger
	spawner    *Spawner

	mode      Mode
	menu      Menu
	settings  Settings
	player    Player
	obstacles []Obstacle
	score     int
	highScore int
	quitting  bool

	frameTime        float64 // ms accumulated towards the next gravity step
	backgroundOffset float64
	distance         float64 // travel since the last spawn
}

// New creates a game in Menu mode and loads the persisted high score.
func New(opts Options) *State {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	settings, err := NewSettings(opts.Config)
	if err != nil {
		logger.Warn("using default skin", "error", err)
	}

	s := &State{
		cfg:        opts.Config,
		difficulty: config.NewDifficulty(opts.Config.Obstacles),
		assets:     opts.Assets,
		highScores: opts.HighScore,
		history:    opts.History,
		sounds:     opts.Sounds,
		logger:     logger,
		spawner:    NewSpawner(opts.Seed, opts.Config.Obstacles, opts.Config.Screen.Width),
		mode:       ModeMenu,
		settings:   settings,
	}

	if s.highScores != nil {
		high, err := s.highScores.Load()
		if err != nil {
			s.logger.Debug("high score unavailable", "error", err)
		}
		s.highScore = high
	}

	s.reset()
	return s
}

// reset puts the run-specific state back to its start values.
func (s *State) reset() {
	s.player = NewPlayer(s.cfg.Player.StartX, s.cfg.Player.StartY)
	s.frameTime = 0
	s.score = 0
	s.distance = 0
	s.backgroundOffset = 0
	s.obstacles = []Obstacle{s.spawner.Spawn(s.score)}
}

// Tick advances the game by one frame and draws it into dst.
// elapsedMs is the wall time since the previous tick; key is the single key
// event for this tick (core.KeyNone if there was none).
func (s *State) Tick(dst *core.Screen, elapsedMs float64, key core.Key) {
	var next Mode
	switch s.mode {
	case ModeMenu:
		next = s.tickMenu(dst, elapsedMs, key)
	case ModePlaying:
		next = s.tickPlaying(dst, elapsedMs, key)
	case ModeEnd:
		next = s.tickEnd(dst, elapsedMs, key)
	default:
		next = ModeMenu
	}

	if next != s.mode {
		s.enter(next)
	}
}

// enter switches modes and performs the one-off work tied to the new mode.
func (s *State) enter(next Mode) {
	s.logger.Debug("mode change", "from", s.mode, "to", next, "score", s.score)
	s.mode = next

	switch next {
	case ModePlaying:
		s.reset()
	case ModeEnd:
		s.finishRun()
	}
}

// finishRun persists a new high score and records the run. Storage failures
// are logged and never stop the game.
func (s *State) finishRun() {
	improved := s.score > s.highScore
	if improved {
		s.highScore = s.score
		if s.highScores != nil {
			if err := s.highScores.Save(s.highScore); err != nil {
				s.logger.Debug("cannot save high score", "score", s.highScore, "error", err)
			}
		}
	}

	if s.history != nil {
		err := s.history.RecordRun(RunResult{
			Score:           s.score,
			PlayerSkin:      s.settings.Player.String(),
			BackgroundSkin:  s.settings.Background.String(),
			ObstacleSpacing: s.settings.ObstacleDistance,
			NewHighScore:    improved,
		})
		if err != nil {
			s.logger.Warn("cannot record run", "error", err)
		}
	}

	if s.sounds != nil {
		s.sounds.Crash()
	}
	s.logger.Info("run finished", "score", s.score, "high_score", s.highScore, "new_high", improved)
}

// tickMenu renders the menu over the scrolling background and applies input.
func (s *State) tickMenu(dst *core.Screen, elapsedMs float64, key core.Key) Mode {
	s.drawBackground(dst)
	s.advanceBackground(elapsedMs)
	drawTitle(dst, s.assets.Title())
	drawMenu(dst, s.menu, s.settings)

	switch s.menu.HandleKey(key, &s.settings, s.difficulty) {
	case MenuActionStart:
		return ModePlaying
	case MenuActionQuit:
		s.quitting = true
	}
	return ModeMenu
}

// tickPlaying advances physics, obstacles and scoring by one frame.
func (s *State) tickPlaying(dst *core.Screen, elapsedMs float64, key core.Key) Mode {
	s.advanceBackground(elapsedMs)
	s.drawBackground(dst)

	s.frameTime += elapsedMs
	if s.frameTime > s.cfg.Physics.FrameDurationMs {
		s.player.GravityStep(s.cfg.Physics)
		s.frameTime = 0
	}

	if key == core.KeySpace {
		s.player.Flap(s.cfg.Physics)
		if s.sounds != nil {
			s.sounds.Flap()
		}
	}

	w, h := s.cfg.Player.Width, s.cfg.Player.Height
	drawSprite(dst, s.assets.Player(s.settings.Player), s.player.X, s.player.Y, w, h)

	next := ModePlaying
	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.Step(s.cfg.Physics.ObstacleSpeed)
		drawObstacle(dst, *o)

		if o.TryScore(s.player) {
			s.score++
		}
		if o.Hits(s.player, w, h) {
			next = ModeEnd
		}
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X > 0 {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	s.distance += s.cfg.Physics.ObstacleSpeed
	if s.distance > float64(s.settings.ObstacleDistance) {
		s.obstacles = append(s.obstacles, s.spawner.Spawn(s.score))
		s.distance = 0
	}

	if s.player.Y+h > s.cfg.Screen.Height {
		next = ModeEnd
	}

	drawHUD(dst, s.score)
	return next
}

// tickEnd renders the game-over screen and handles P/M/Q.
func (s *State) tickEnd(dst *core.Screen, elapsedMs float64, key core.Key) Mode {
	s.advanceBackground(elapsedMs)
	s.drawBackground(dst)
	drawEndScreen(dst, s.score, s.highScore)

	switch key {
	case core.KeyP:
		return ModePlaying
	case core.KeyM:
		return ModeMenu
	case core.KeyQ:
		s.quitting = true
	}
	return ModeEnd
}

// advanceBackground scrolls the background by elapsed time, keeping the
// offset within one image width.
func (s *State) advanceBackground(elapsedMs float64) {
	s.backgroundOffset += s.cfg.Physics.BackgroundSpeed * elapsedMs
	w := float64(s.assets.Background(s.settings.Background).Width())
	if s.backgroundOffset >= w {
		s.backgroundOffset = math.Mod(s.backgroundOffset, w)
	}
}

func (s *State) drawBackground(dst *core.Screen) {
	drawBackground(dst, s.assets.Background(s.settings.Background), s.backgroundOffset)
}

// Mode returns the active mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Quitting reports whether the player asked to quit. The host should stop
// calling Tick and exit.
func (s *State) Quitting() bool {
	return s.quitting
}

// Score returns the score of the current or last run.
func (s *State) Score() int {
	return s.score
}

// HighScore returns the best score seen so far.
func (s *State) HighScore() int {
	return s.highScore
}

// Player returns the avatar.
func (s *State) Player() Player {
	return s.player
}

// Obstacles returns a copy of the live obstacles.
func (s *State) Obstacles() []Obstacle {
	return append([]Obstacle(nil), s.obstacles...)
}

// Settings returns the menu-controlled settings.
func (s *State) Settings() Settings {
	return s.settings
}

// Menu returns the menu navigation state.
func (s *State) Menu() Menu {
	return s.menu
}

// BackgroundOffset returns the current horizontal scroll of the background.
func (s *State) BackgroundOffset() float64 {
	return s.backgroundOffset
}
