package keyer

import "time"

// DefaultThreshold separates a dot from a dash in duration mode.
const DefaultThreshold = 150 * time.Millisecond

// Duration times presses of the straight key. A press held for at most the
// threshold is a dot, anything longer is a dash. Separator and backspace keys
// act on their release edge.
type Duration struct {
	threshold time.Duration
	keys      [keyCount]keyState
}

// NewDuration returns a duration-mode interpreter. A non-positive threshold
// falls back to DefaultThreshold.
func NewDuration(threshold time.Duration) *Duration {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Duration{threshold: threshold}
}

// Mode implements Interpreter.
func (d *Duration) Mode() Mode {
	return ModeDuration
}

// Threshold returns the dot/dash boundary.
func (d *Duration) Threshold() time.Duration {
	return d.threshold
}

// Classify maps a completed press to a dot or a dash.
func (d *Duration) Classify(held time.Duration) Action {
	if held <= d.threshold {
		return ActionDot
	}
	return ActionDash
}

// Press only honours quit; everything else arrives through Sample.
func (d *Duration) Press(k Key, _ time.Time) []Action {
	if k == KeyQuit {
		return []Action{ActionQuit}
	}
	return nil
}

// Sample implements Interpreter.
func (d *Duration) Sample(held KeySet, now time.Time) []Action {
	var actions []Action
	for k := Key(0); k < keyCount; k++ {
		edge, dur := d.keys[k].update(held.Has(k), now)
		if a := d.onEdge(k, edge, dur); a != ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

func (d *Duration) onEdge(k Key, edge Edge, held time.Duration) Action {
	switch k {
	case KeyQuit:
		if edge == EdgePress {
			return ActionQuit
		}
		return ActionNone
	case KeyStraight:
		if edge == EdgeRelease {
			return d.Classify(held)
		}
		return ActionNone
	}
	if edge != EdgeRelease {
		return ActionNone
	}
	switch k {
	case KeyLetterSep:
		return ActionLetterSep
	case KeyWordSep:
		return ActionWordSep
	case KeyBackspace:
		return ActionBackspace
	default:
		return ActionNone
	}
}
