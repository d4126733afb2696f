package sidetone

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			break
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("stream error: %v", err)
	}
	return out
}

func TestOscillatorRange(t *testing.T) {
	osc := newOscillator(600, beep.SampleRate(44100))
	samples := make([][2]float64, 1000)
	n, ok := osc.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("oscillator should fill the buffer, got n=%d ok=%v", n, ok)
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d out of range or unbalanced: %v", i, s)
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, Tone(600, 60*time.Millisecond, 1, rate))
	if want := rate.N(60 * time.Millisecond); len(samples) != want {
		t.Fatalf("expected %d samples, got %d", want, len(samples))
	}
}

func TestToneRampsAtEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, Tone(600, 60*time.Millisecond, 1, rate))
	if samples[0][0] != 0 {
		t.Fatalf("tone should start silent, got %f", samples[0][0])
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.01 {
		t.Fatalf("tone should end near silence, got %f", last)
	}
	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak < 0.9 {
		t.Fatalf("tone body should reach full volume, peak %f", peak)
	}
}

func TestToneSilentAtZeroVolume(t *testing.T) {
	samples := drain(t, Tone(600, 20*time.Millisecond, 0, beep.SampleRate(44100)))
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d should be silent: %v", i, s)
		}
	}
}

func TestEnvelopeShortTone(t *testing.T) {
	e := newEnvelope(nil, 6, 5)
	if e.ramp != 3 {
		t.Fatalf("ramp should shrink to half the tone, got %d", e.ramp)
	}
	if e.gain(0) != 0 || e.gain(3) != 1 || e.gain(5) <= 0 {
		t.Fatalf("unexpected gains: %f %f %f", e.gain(0), e.gain(3), e.gain(5))
	}
}

func TestConfigDefaults(t *testing.T) {
	c := Config{Volume: 4}.withDefaults()
	if c.Frequency != DefaultFrequency || c.Dit != DefaultDit || c.Volume != 1 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.Dit()
	p.Dah()
	p.Close()
}
