// Package sidetone plays the keying tone for dots and dashes.
package sidetone

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	DefaultFrequency = 600.0
	DefaultDit       = 60 * time.Millisecond
	DefaultVolume    = 0.5

	// Ramp length at both ends of a tone; hard edges click.
	rampLength = 5 * time.Millisecond
)

// Player sounds keyed elements. Calls never block on audio output.
type Player interface {
	Dit()
	Dah()
	Close()
}

// Config describes the tone. A zero Volume is silent.
type Config struct {
	Frequency float64
	Dit       time.Duration
	Volume    float64
}

func (c Config) withDefaults() Config {
	if c.Frequency <= 0 {
		c.Frequency = DefaultFrequency
	}
	if c.Dit <= 0 {
		c.Dit = DefaultDit
	}
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
	return c
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Dit()   {}
func (Nop) Dah()   {}
func (Nop) Close() {}

// Speaker plays tones on the default audio device.
type Speaker struct {
	cfg   Config
	mu    sync.Mutex
	mixer *beep.Mixer
	open  bool
}

// Open initializes the audio device.
func Open(cfg Config) (*Speaker, error) {
	s := &Speaker{cfg: cfg.withDefaults(), mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	speaker.Play(s.mixer)
	s.open = true
	return s, nil
}

// Dit plays one unit of tone.
func (s *Speaker) Dit() {
	s.play(s.cfg.Dit)
}

// Dah plays three units of tone.
func (s *Speaker) Dah() {
	s.play(3 * s.cfg.Dit)
}

func (s *Speaker) play(length time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	tone := Tone(s.cfg.Frequency, length, s.cfg.Volume, sampleRate)
	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

// Close silences pending tones. Later calls are no-ops.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.open = false
}

// Tone builds a shaped sine tone of the given length.
func Tone(freq float64, length time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(freq, rate)
	shaped := newEnvelope(beep.Take(rate.N(length), osc), rate.N(length), rate.N(rampLength))
	if volume <= 0 {
		return &effects.Volume{Streamer: shaped, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(volume)}
}

type oscillator struct {
	step  float64
	phase float64
}

func newOscillator(freq float64, rate beep.SampleRate) *oscillator {
	return &oscillator{step: freq / float64(rate)}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.step
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps the gain up over the first ramp samples and down over the
// last ramp samples.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	ramp     int
}

func newEnvelope(s beep.Streamer, total, ramp int) *envelope {
	if ramp*2 > total {
		ramp = total / 2
	}
	return &envelope{streamer: s, total: total, ramp: ramp}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := e.gain(e.pos)
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) gain(pos int) float64 {
	if e.ramp <= 0 {
		return 1
	}
	if pos < e.ramp {
		return float64(pos) / float64(e.ramp)
	}
	if left := e.total - pos; left < e.ramp {
		if left < 0 {
			return 0
		}
		return float64(left) / float64(e.ramp)
	}
	return 1
}

func (e *envelope) Err() error { return e.streamer.Err() }
