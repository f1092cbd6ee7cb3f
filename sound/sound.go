// Package sound synthesizes the two effects the wheel needs: a short click
// as the cursor passes entries and a fanfare when a winner lands.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays synthesized tones through the speaker. A nil or disabled
// Player discards every call, so callers never need to guard.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker when enabled is true. Initialization
// failure is not fatal; the returned Player is silent and the error is for
// logging only.
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.enabled = true
	return p, nil
}

// tone returns a sine burst of the given frequency and length.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(0)
	}
	return beep.Take(sampleRate.N(d), sine)
}

// Click marks the cursor passing one entry.
func (p *Player) Click() {
	if p == nil || !p.enabled {
		return
	}
	speaker.Play(tone(880, 30*time.Millisecond))
}

// Fanfare marks a winner landing.
func (p *Player) Fanfare() {
	if p == nil || !p.enabled {
		return
	}
	speaker.Play(beep.Seq(
		tone(523.25, 120*time.Millisecond),
		tone(659.25, 120*time.Millisecond),
		tone(783.99, 240*time.Millisecond),
	))
}

// Close shuts the speaker down.
func (p *Player) Close() {
	if p == nil || !p.enabled {
		return
	}
	speaker.Close()
}
