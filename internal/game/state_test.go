package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flappy-animals/internal/assets"
	"github.com/vovakirdan/flappy-animals/internal/config"
	"github.com/vovakirdan/flappy-animals/internal/core"
)

type memHighScore struct {
	value   int
	saves   []int
	loadErr error
	saveErr error
}

func (m *memHighScore) Load() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.value, nil
}

func (m *memHighScore) Save(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value = score
	return nil
}

type memHistory struct {
	runs []RunResult
}

func (m *memHistory) RecordRun(r RunResult) error {
	m.runs = append(m.runs, r)
	return nil
}

type countingSounds struct {
	flaps, crashes int
}

func (c *countingSounds) Flap()  { c.flaps++ }
func (c *countingSounds) Crash() { c.crashes++ }

func loadAssets(t *testing.T) *assets.Store {
	t.Helper()
	store, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() error = %v", err)
	}
	return store
}

func newTestState(t *testing.T, opts Options) (*State, *core.Screen) {
	t.Helper()
	opts.Config = config.Default()
	opts.Assets = loadAssets(t)
	s := New(opts)
	return s, core.NewScreen(opts.Config.Screen.Width, opts.Config.Screen.Height)
}

func TestNewStartsInMenu(t *testing.T) {
	hs := &memHighScore{value: 17}
	s, _ := newTestState(t, Options{HighScore: hs, Seed: 1})

	if s.Mode() != ModeMenu {
		t.Errorf("mode = %s, want Menu", s.Mode())
	}
	if s.HighScore() != 17 {
		t.Errorf("high score = %d, want 17", s.HighScore())
	}
	if s.Quitting() {
		t.Error("quitting at start")
	}
	if got := s.Settings(); got.Player != assets.PlayerDuck || got.Background != assets.BackgroundMountains || got.ObstacleDistance != 50 {
		t.Errorf("settings = %+v, want duck/mountains/50", got)
	}
}

func TestNewHighScoreLoadError(t *testing.T) {
	hs := &memHighScore{loadErr: errors.New("corrupt")}
	s, _ := newTestState(t, Options{HighScore: hs})

	if s.HighScore() != 0 {
		t.Errorf("high score = %d, want 0", s.HighScore())
	}
}

func TestStartGameResetsRun(t *testing.T) {
	s, screen := newTestState(t, Options{Seed: 3})

	s.Tick(screen, 16, core.KeyReturn)
	if s.Mode() != ModePlaying {
		t.Fatalf("mode = %s, want Playing", s.Mode())
	}

	p := s.Player()
	if p.X != 2 || p.Y != 25 || p.Velocity != 0 {
		t.Errorf("player = %+v, want (2,25) at rest", p)
	}
	obs := s.Obstacles()
	if len(obs) != 1 || obs[0].X != 120 || obs[0].Size != 40 {
		t.Errorf("obstacles = %+v, want one size-40 obstacle at x=120", obs)
	}
	if s.Score() != 0 || s.BackgroundOffset() != 0 {
		t.Errorf("score %d offset %v, want 0 and 0", s.Score(), s.BackgroundOffset())
	}
}

func TestPlayingFallsToEnd(t *testing.T) {
	hs := &memHighScore{}
	history := &memHistory{}
	sounds := &countingSounds{}
	s, screen := newTestState(t, Options{HighScore: hs, History: history, Sounds: sounds, Seed: 5})

	s.Tick(screen, 16, core.KeyReturn)
	for i := 0; i < 500 && s.Mode() == ModePlaying; i++ {
		s.Tick(screen, 100, core.KeyNone)
	}

	if s.Mode() != ModeEnd {
		t.Fatalf("mode = %s, want End after falling", s.Mode())
	}
	if p := s.Player(); p.Y+14 <= 80 {
		t.Errorf("player y = %d, want below the bottom edge", p.Y)
	}
	if len(hs.saves) != 0 {
		t.Errorf("saved %v for a zero score", hs.saves)
	}
	if len(history.runs) != 1 || history.runs[0].Score != 0 {
		t.Errorf("runs = %+v, want one zero-score run", history.runs)
	}
	if sounds.crashes != 1 {
		t.Errorf("crashes = %d, want 1", sounds.crashes)
	}

	// Further End ticks do not repeat the end-of-run work.
	s.Tick(screen, 16, core.KeyNone)
	s.Tick(screen, 16, core.KeyNone)
	if len(history.runs) != 1 || sounds.crashes != 1 {
		t.Errorf("end work repeated: runs %d crashes %d", len(history.runs), sounds.crashes)
	}
}

func TestGravityWaitsForFrameDuration(t *testing.T) {
	s, screen := newTestState(t, Options{})
	s.Tick(screen, 16, core.KeyReturn)

	s.Tick(screen, 30, core.KeyNone)
	s.Tick(screen, 30, core.KeyNone)
	if v := s.Player().Velocity; v != 0 {
		t.Fatalf("velocity = %v after 60ms, want 0", v)
	}
	s.Tick(screen, 30, core.KeyNone)
	if v := s.Player().Velocity; v == 0 {
		t.Error("no gravity step after 90ms")
	}
}

func TestSpaceFlaps(t *testing.T) {
	sounds := &countingSounds{}
	s, screen := newTestState(t, Options{Sounds: sounds})
	s.Tick(screen, 16, core.KeyReturn)

	s.Tick(screen, 16, core.KeySpace)
	if v := s.Player().Velocity; v != -2.5 {
		t.Errorf("velocity = %v, want -2.5", v)
	}
	if sounds.flaps != 1 {
		t.Errorf("flaps = %d, want 1", sounds.flaps)
	}
}

func TestObstaclesScrollAndSpawn(t *testing.T) {
	s, screen := newTestState(t, Options{Seed: 9})
	s.Tick(screen, 16, core.KeyReturn)

	// Keep the player airborne with small elapsed times so gravity never runs.
	for i := 0; i < 101; i++ {
		s.Tick(screen, 1, core.KeyNone)
	}

	obs := s.Obstacles()
	if len(obs) != 2 {
		t.Fatalf("obstacles = %d, want 2 after travelling past the spacing", len(obs))
	}
	if obs[0].X != 120-101*0.5 {
		t.Errorf("first obstacle x = %v, want %v", obs[0].X, 120-101*0.5)
	}
	if obs[1].X != 120 {
		t.Errorf("new obstacle x = %v, want 120", obs[1].X)
	}
}

func TestObstacleHitEndsRun(t *testing.T) {
	history := &memHistory{}
	sounds := &countingSounds{}
	s, screen := newTestState(t, Options{History: history, Sounds: sounds})
	s.Tick(screen, 16, core.KeyReturn)

	// Column 10 after one step, gap [50,70) well below the player at y 25..38.
	s.obstacles = []Obstacle{{X: 10.5, GapY: 60, Size: 20}}
	s.Tick(screen, 1, core.KeyNone)

	if s.Mode() != ModeEnd {
		t.Fatalf("mode = %s, want End after hitting an obstacle", s.Mode())
	}
	if p := s.Player(); p.Y != 25 {
		t.Errorf("player y = %d, want 25 (ended by the hit, not a fall)", p.Y)
	}
	if len(history.runs) != 1 || sounds.crashes != 1 {
		t.Errorf("runs %d crashes %d, want 1 and 1", len(history.runs), sounds.crashes)
	}
}

func TestPassingObstacleScoresOnceAndIsRemoved(t *testing.T) {
	s, screen := newTestState(t, Options{})
	s.Tick(screen, 16, core.KeyReturn)

	// Gap [12,52) contains the player at y 25..38, so passing through is safe.
	s.obstacles = []Obstacle{{X: 3, GapY: 32, Size: 40}}

	wantScores := []int{0, 0, 1, 1, 1}
	for i, want := range wantScores {
		s.Tick(screen, 1, core.KeyNone)
		if s.Mode() != ModePlaying {
			t.Fatalf("tick %d: mode = %s, want Playing", i+1, s.Mode())
		}
		if s.Score() != want {
			t.Errorf("tick %d: score = %d, want %d", i+1, s.Score(), want)
		}
	}

	obs := s.Obstacles()
	if len(obs) != 1 || obs[0].X != 0.5 || !obs[0].Scored {
		t.Fatalf("obstacles = %+v, want the scored obstacle at x=0.5", obs)
	}

	s.Tick(screen, 1, core.KeyNone)
	if obs := s.Obstacles(); len(obs) != 0 {
		t.Errorf("obstacles = %+v, want none once x reaches 0", obs)
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}

func TestFinishRunPersistsNewHighScore(t *testing.T) {
	hs := &memHighScore{value: 3}
	history := &memHistory{}
	s, _ := newTestState(t, Options{HighScore: hs, History: history})

	s.mode = ModePlaying
	s.score = 5
	s.enter(ModeEnd)

	if s.HighScore() != 5 {
		t.Errorf("high score = %d, want 5", s.HighScore())
	}
	if len(hs.saves) != 1 || hs.saves[0] != 5 {
		t.Errorf("saves = %v, want [5]", hs.saves)
	}
	if len(history.runs) != 1 || !history.runs[0].NewHighScore {
		t.Errorf("runs = %+v, want one new-high run", history.runs)
	}
	if r := history.runs[0]; r.PlayerSkin != "duck" || r.BackgroundSkin != "mountains" || r.ObstacleSpacing != 50 {
		t.Errorf("run settings = %+v", r)
	}

	// A lower score leaves the stored value alone.
	s.enter(ModePlaying)
	s.score = 4
	s.enter(ModeEnd)
	if len(hs.saves) != 1 || s.HighScore() != 5 {
		t.Errorf("saves = %v high = %d, want untouched", hs.saves, s.HighScore())
	}
}

func TestFinishRunSaveErrorIsNotFatal(t *testing.T) {
	hs := &memHighScore{saveErr: errors.New("read-only")}
	s, _ := newTestState(t, Options{HighScore: hs})

	s.mode = ModePlaying
	s.score = 2
	s.enter(ModeEnd)

	if s.Mode() != ModeEnd || s.HighScore() != 2 {
		t.Errorf("mode %s high %d, want End and 2", s.Mode(), s.HighScore())
	}
}

func TestEndKeys(t *testing.T) {
	tests := []struct {
		key      core.Key
		want     Mode
		quitting bool
	}{
		{core.KeyP, ModePlaying, false},
		{core.KeyM, ModeMenu, false},
		{core.KeyQ, ModeEnd, true},
		{core.KeySpace, ModeEnd, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			s, screen := newTestState(t, Options{})
			s.mode = ModePlaying
			s.score = 1
			s.enter(ModeEnd)

			s.Tick(screen, 16, tt.key)
			if s.Mode() != tt.want {
				t.Errorf("mode = %s, want %s", s.Mode(), tt.want)
			}
			if s.Quitting() != tt.quitting {
				t.Errorf("quitting = %v, want %v", s.Quitting(), tt.quitting)
			}
			if tt.want == ModePlaying && s.Score() != 0 {
				t.Errorf("score = %d after restart, want 0", s.Score())
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	s, screen := newTestState(t, Options{})
	for i := 0; i < 4; i++ {
		s.Tick(screen, 16, core.KeyDown)
	}
	s.Tick(screen, 16, core.KeyReturn)
	if !s.Quitting() {
		t.Error("Quit Game did not request quit")
	}
}

func TestEndScreenText(t *testing.T) {
	hs := &memHighScore{value: 9}
	s, screen := newTestState(t, Options{HighScore: hs})
	s.mode = ModePlaying
	s.score = 4
	s.enter(ModeEnd)

	s.Tick(screen, 16, core.KeyNone)

	want := map[int]string{
		5:  "You are dead!",
		6:  "Final Score: 4",
		7:  "High Score: 9",
		8:  "(P) Play Again",
		9:  "(M) Main Menu",
		10: "(Q) Quit Game",
	}
	for y, text := range want {
		x := (screen.Width() - len(text)) / 2
		if got := screen.Row(y)[x : x+len(text)]; got != text {
			t.Errorf("row %d = %q, want %q", y, got, text)
		}
	}
}

func TestMenuRendersTitleAndOptions(t *testing.T) {
	s, screen := newTestState(t, Options{})
	s.Tick(screen, 16, core.KeyNone)

	if c := screen.Cell(25, 5); c.Glyph != 'F' || c.Fg != core.ColorYellow {
		t.Errorf("title cell = %+v, want yellow F", c)
	}
	text := "Start Game"
	x := (screen.Width() - len(text)) / 2
	if got := screen.Row(15)[x : x+len(text)]; got != text {
		t.Errorf("row 15 = %q, want %q", got, text)
	}
	if c := screen.Cell(x, 15); c.Fg != core.ColorYellow {
		t.Errorf("selected option fg = %v, want yellow", c.Fg)
	}
}

func TestHUDDrawnWhilePlaying(t *testing.T) {
	s, screen := newTestState(t, Options{})
	s.Tick(screen, 16, core.KeyReturn)
	s.Tick(screen, 16, core.KeyNone)

	if got := screen.Row(0)[:19]; got != "Press Space to flap" {
		t.Errorf("row 0 = %q", got)
	}
	if got := screen.Row(1)[:8]; got != "Score: 0" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestBackgroundPeriodicInImageWidth(t *testing.T) {
	store := loadAssets(t)

	for _, skin := range assets.BackgroundSkins {
		img := store.Background(skin)
		a := core.NewScreen(120, 80)
		b := core.NewScreen(120, 80)
		drawBackground(a, img, 0)
		drawBackground(b, img, float64(img.Width()))

		for y := 0; y < 80; y++ {
			for x := 0; x < 120; x++ {
				if a.Cell(x, y) != b.Cell(x, y) {
					t.Fatalf("%s: cell (%d,%d) differs between offset 0 and %d", skin, x, y, img.Width())
				}
			}
		}
	}
}

func TestBackgroundOffsetWraps(t *testing.T) {
	s, screen := newTestState(t, Options{})
	width := float64(s.assets.Background(s.settings.Background).Width())

	// 0.001 cells per ms: each 10s tick scrolls 10 cells.
	for i := 0; i < 100; i++ {
		s.Tick(screen, 10000, core.KeyNone)
		if off := s.BackgroundOffset(); off < 0 || off >= width {
			t.Fatalf("tick %d: offset %v outside [0,%v)", i, off, width)
		}
	}
}

func TestDrawSpriteSkipsTransparentAndOffscreen(t *testing.T) {
	store := loadAssets(t)
	img := store.Player(assets.PlayerDuck)
	screen := core.NewScreen(20, 20)

	drawSprite(screen, img, 10, 10, 14, 14)
	drawSprite(screen, img, 0, 0, 14, 14)

	// The sprite's top-left pixel is transparent and leaves the blank cell.
	if c := screen.Cell(0, 0); c != core.NewScreen(1, 1).Cell(0, 0) {
		t.Errorf("transparent pixel drawn: %+v", c)
	}
}
