package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sweep is a sine tone gliding linearly from one frequency to another while
// fading out.
type sweep struct {
	from, to float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// newSweep creates a tone lasting duration that glides from -> to Hz.
func newSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		total: rate.N(duration),
		rate:  rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		val := math.Sin(2*math.Pi*s.phase) * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// newVolume scales a stream by a linear factor; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// flapSound is a short rising chirp.
func flapSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(newSweep(600, 900, 60*time.Millisecond, rate), 0.4)
}

// crashSound is a falling two-part thud.
func crashSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		newSweep(400, 200, 120*time.Millisecond, rate),
		newSweep(200, 80, 250*time.Millisecond, rate),
	), 0.6)
}
