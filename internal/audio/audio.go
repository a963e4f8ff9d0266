// Package audio plays the game's sound effects through the system speaker.
// Audio is optional: when the speaker cannot be opened every method is a
// no-op.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays flap and crash effects.
type Player struct {
	mu      sync.Mutex
	enabled bool
	mixer   *beep.Mixer
}

// New opens the speaker when enabled is true. A speaker that fails to
// open is logged and leaves the player silent.
func New(enabled bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Player{mixer: &beep.Mixer{}}
	if !enabled {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("sound disabled", "error", err)
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p
}

// Enabled reports whether sounds reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Flap plays the flap chirp.
func (p *Player) Flap() {
	p.play(flapSound(sampleRate))
}

// Crash plays the crash sound.
func (p *Player) Crash() {
	p.play(crashSound(sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences all queued sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.enabled = false
}
