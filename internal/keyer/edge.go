package keyer

import "time"

// Edge is a transition between two consecutive samples of a key.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgePress
	EdgeRelease
)

// keyState tracks one key as Idle -> Pressed -> Idle.
type keyState struct {
	pressed bool
	since   time.Time
}

// update feeds the next sample. On EdgeRelease it also returns how long the
// key was held.
func (s *keyState) update(down bool, now time.Time) (Edge, time.Duration) {
	switch {
	case down && !s.pressed:
		s.pressed = true
		s.since = now
		return EdgePress, 0
	case !down && s.pressed:
		held := now.Sub(s.since)
		s.pressed = false
		s.since = time.Time{}
		return EdgeRelease, held
	default:
		return EdgeNone, 0
	}
}
