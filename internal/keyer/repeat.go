package keyer

import "time"

// Defaults for reconstructing holds from terminal auto-repeat.
const (
	DefaultRepeatDelay    = 660 * time.Millisecond
	DefaultRepeatSlack    = 150 * time.Millisecond
	DefaultRepeatInterval = 100 * time.Millisecond
	DefaultTapLength      = 30 * time.Millisecond
)

// RepeatConfig describes the auto-repeat behaviour of the terminal.
type RepeatConfig struct {
	// RepeatDelay is the expected gap between a press and its first repeat.
	RepeatDelay time.Duration
	// RepeatSlack is how far a first repeat may land from RepeatDelay.
	RepeatSlack time.Duration
	// RepeatInterval is the longest gap between two later repeats.
	RepeatInterval time.Duration
	// TapLength is how long a press without repeats counts as held.
	TapLength time.Duration
}

// DefaultRepeatConfig returns the stock auto-repeat assumptions.
func DefaultRepeatConfig() RepeatConfig {
	return RepeatConfig{
		RepeatDelay:    DefaultRepeatDelay,
		RepeatSlack:    DefaultRepeatSlack,
		RepeatInterval: DefaultRepeatInterval,
		TapLength:      DefaultTapLength,
	}
}

// RepeatTracker rebuilds key holds from press events. Terminals report a press
// and then auto-repeats while the key stays down, but never the release. A
// press followed by another event RepeatDelay later, give or take RepeatSlack,
// starts a hold; the hold lasts while repeats keep arriving within
// RepeatInterval. Any other press is a tap, so fast keying never merges.
//
// Whether an event extends a hold is only known once later events have had a
// chance to arrive, so state is queried for instants at least Lag in the past.
type RepeatTracker struct {
	cfg    RepeatConfig
	events [keyCount][]time.Time
}

type hold struct {
	start time.Time
	last  time.Time
}

// NewRepeatTracker returns a tracker. Zero fields take their defaults.
func NewRepeatTracker(cfg RepeatConfig) *RepeatTracker {
	def := DefaultRepeatConfig()
	if cfg.RepeatDelay <= 0 {
		cfg.RepeatDelay = def.RepeatDelay
	}
	if cfg.RepeatSlack <= 0 {
		cfg.RepeatSlack = def.RepeatSlack
	}
	if cfg.RepeatSlack >= cfg.RepeatDelay {
		cfg.RepeatSlack = cfg.RepeatDelay / 2
	}
	if cfg.RepeatInterval <= 0 {
		cfg.RepeatInterval = def.RepeatInterval
	}
	if cfg.TapLength <= 0 {
		cfg.TapLength = def.TapLength
	}
	return &RepeatTracker{cfg: cfg}
}

// Lag is how far behind the newest event state becomes final.
func (t *RepeatTracker) Lag() time.Duration {
	return max(t.cfg.RepeatDelay+t.cfg.RepeatSlack, t.cfg.RepeatInterval)
}

// Observe records a press or auto-repeat of k. Timestamps must not decrease.
func (t *RepeatTracker) Observe(k Key, at time.Time) {
	if k >= keyCount {
		return
	}
	t.events[k] = append(t.events[k], at)
}

// Held returns the keys that were down at any instant in (from, to]. A tap
// shorter than the sampling step is still reported once.
func (t *RepeatTracker) Held(from, to time.Time) KeySet {
	var set KeySet
	for k := Key(0); k < keyCount; k++ {
		holds := t.holds(t.events[k])
		for _, h := range holds {
			end := h.last.Add(t.cfg.TapLength)
			if h.start.After(to) {
				break
			}
			if end.After(from) {
				set = set.With(k)
				break
			}
		}
		t.prune(k, holds, to)
	}
	return set
}

func (t *RepeatTracker) holds(events []time.Time) []hold {
	var holds []hold
	repeating := false
	for i, at := range events {
		if i > 0 && t.joins(events, i, repeating) {
			holds[len(holds)-1].last = at
			repeating = true
			continue
		}
		holds = append(holds, hold{start: at, last: at})
		repeating = false
	}
	return holds
}

func (t *RepeatTracker) joins(events []time.Time, i int, repeating bool) bool {
	gap := events[i].Sub(events[i-1])
	if repeating {
		return gap <= t.cfg.RepeatInterval
	}
	return gap >= t.cfg.RepeatDelay-t.cfg.RepeatSlack && gap <= t.cfg.RepeatDelay+t.cfg.RepeatSlack
}

// prune drops holds that ended before upTo and can no longer change, that is,
// holds followed by another hold that started no later than upTo.
func (t *RepeatTracker) prune(k Key, holds []hold, upTo time.Time) {
	drop := 0
	for i := 0; i+1 < len(holds); i++ {
		if holds[i+1].start.After(upTo) || holds[i].last.Add(t.cfg.TapLength).After(upTo) {
			break
		}
		drop++
	}
	if drop == 0 {
		return
	}
	keepFrom := holds[drop].start
	events := t.events[k]
	idx := 0
	for idx < len(events) && events[idx].Before(keepFrom) {
		idx++
	}
	t.events[k] = append(events[:0:0], events[idx:]...)
}
