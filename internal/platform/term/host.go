// Package term hosts the game directly on a tcell screen, without Bubble Tea.
// It is the lighter alternative host: a ticker drives the game and a
// goroutine forwards terminal events.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-animals/internal/config"
	"github.com/vovakirdan/flappy-animals/internal/core"
	"github.com/vovakirdan/flappy-animals/internal/game"
)

// Host runs one game on a tcell screen.
type Host struct {
	screen   tcell.Screen
	state    *game.State
	buf      *core.Screen
	fps      int
	latch    core.KeyLatch
	lastTick time.Time
	styles   map[[2]core.Color]tcell.Style
	logger   *log.Logger
}

// New opens the terminal and creates a host for state.
func New(state *game.State, cfg config.ScreenConfig, logger *log.Logger) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: cannot init screen: %w", err)
	}
	return NewWithScreen(screen, state, cfg, logger), nil
}

// NewWithScreen creates a host on an already initialized screen.
func NewWithScreen(screen tcell.Screen, state *game.State, cfg config.ScreenConfig, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		screen: screen,
		state:  state,
		buf:    core.NewScreen(cfg.Width, cfg.Height),
		fps:    cfg.FPS,
		styles: make(map[[2]core.Color]tcell.Style),
		logger: logger,
	}
}

// Run drives the game until the player quits, ctrl+c is pressed or ctx is
// done. The screen is finalized on return.
func (h *Host) Run(ctx context.Context) error {
	defer h.screen.Fini()

	if w, hgt := h.screen.Size(); w < h.buf.Width() || hgt < h.buf.Height() {
		h.logger.Warn("terminal smaller than game screen", "width", w, "height", hgt)
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go h.pollEvents(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(h.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			h.step(now)
			if h.state.Quitting() {
				return nil
			}
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized or done
// is closed. events is closed when PollEvent reports the end of input.
func (h *Host) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent latches keys and reacts to resizes. Returns false on ctrl+c.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		h.latch.Push(mapKey(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// step runs one game tick and presents the result.
func (h *Host) step(now time.Time) {
	elapsed := 1000.0 / float64(h.fps)
	if !h.lastTick.IsZero() {
		elapsed = float64(now.Sub(h.lastTick)) / float64(time.Millisecond)
	}
	h.lastTick = now

	h.state.Tick(h.buf, elapsed, h.latch.Take())
	h.draw()
}

// draw copies the cell buffer to the terminal.
func (h *Host) draw() {
	for y := 0; y < h.buf.Height(); y++ {
		for x := 0; x < h.buf.Width(); x++ {
			c := h.buf.Cell(x, y)
			h.screen.SetContent(x, y, c.Glyph, nil, h.style(c.Fg, c.Bg))
		}
	}
	h.screen.Show()
}

func (h *Host) style(fg, bg core.Color) tcell.Style {
	k := [2]core.Color{fg, bg}
	if st, ok := h.styles[k]; ok {
		return st
	}
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	h.styles[k] = st
	return st
}

// mapKey translates a tcell key to a game key.
func mapKey(k tcell.Key, r rune) core.Key {
	switch k {
	case tcell.KeyUp:
		return core.KeyUp
	case tcell.KeyDown:
		return core.KeyDown
	case tcell.KeyLeft:
		return core.KeyLeft
	case tcell.KeyRight:
		return core.KeyRight
	case tcell.KeyEnter:
		return core.KeyReturn
	case tcell.KeyEscape:
		return core.KeyEscape
	case tcell.KeyRune:
		switch r {
		case ' ':
			return core.KeySpace
		case 'k':
			return core.KeyUp
		case 'j':
			return core.KeyDown
		case 'h':
			return core.KeyLeft
		case 'l':
			return core.KeyRight
		case 'p', 'P':
			return core.KeyP
		case 'm', 'M':
			return core.KeyM
		case 'q', 'Q':
			return core.KeyQ
		}
	}
	return core.KeyNone
}
