// Package keyer interprets key input as Morse buffer edits.
//
// Two strategies share one Interpreter interface. Duration consumes sampled
// key state and times presses of a single straight key; Discrete consumes
// key-press events from separate dot and dash keys.
package keyer

import (
	"fmt"
	"strings"
	"time"
)

// Key is a logical trainer key.
type Key uint8

const (
	KeyStraight Key = iota
	KeyDot
	KeyDash
	KeyLetterSep
	KeyWordSep
	KeyBackspace
	KeyQuit

	keyCount
)

var keyNames = [...]string{
	KeyStraight:  "straight",
	KeyDot:       "dot",
	KeyDash:      "dash",
	KeyLetterSep: "letter-sep",
	KeyWordSep:   "word-sep",
	KeyBackspace: "backspace",
	KeyQuit:      "quit",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// KeySet is a set of held keys.
type KeySet uint16

// Keys builds a set from keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// With returns the set plus k.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Action is one interpreted edit.
type Action uint8

const (
	ActionNone Action = iota
	ActionDot
	ActionDash
	ActionLetterSep
	ActionWordSep
	ActionBackspace
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionDot:
		return "dot"
	case ActionDash:
		return "dash"
	case ActionLetterSep:
		return "letter-sep"
	case ActionWordSep:
		return "word-sep"
	case ActionBackspace:
		return "backspace"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Mode selects an input strategy.
type Mode string

const (
	ModeDuration Mode = "duration"
	ModeDiscrete Mode = "discrete"
)

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDuration:
		return ModeDuration, nil
	case ModeDiscrete:
		return ModeDiscrete, nil
	default:
		return "", fmt.Errorf("unknown input mode %q (want %q or %q)", s, ModeDuration, ModeDiscrete)
	}
}

// Interpreter turns key input into actions.
type Interpreter interface {
	// Mode reports the strategy.
	Mode() Mode
	// Press handles a discrete key-press event.
	Press(k Key, now time.Time) []Action
	// Sample handles the set of keys held at now. Calls must be made with
	// non-decreasing timestamps.
	Sample(held KeySet, now time.Time) []Action
}

// New returns the interpreter for mode.
func New(mode Mode, threshold time.Duration) (Interpreter, error) {
	switch mode {
	case ModeDuration:
		return NewDuration(threshold), nil
	case ModeDiscrete:
		return NewDiscrete(), nil
	default:
		return nil, fmt.Errorf("unknown input mode %q", mode)
	}
}
