// Package model defines shared data structures.
package model

import "time"

// Config defines trainer settings.
type Config struct {
	Lang      string
	Words     int
	CorpusDir string
	Mode      string
	Threshold time.Duration
	Refresh   time.Duration
	Poll      time.Duration
	Hint      bool

	Sidetone     bool
	ToneHz       float64
	ToneDit      time.Duration
	ToneVolume   float64
	RepeatDelay  time.Duration
	RepeatPeriod time.Duration

	Keys KeyBindings
}

// KeyBindings lists the terminal keys bound to each trainer key. Names follow
// Bubble Tea key strings ("f", "esc", "ctrl+c", " " for space).
type KeyBindings struct {
	Straight  []string
	Dot       []string
	Dash      []string
	LetterSep []string
	WordSep   []string
	Backspace []string
	Quit      []string
}

// LiveStats is the running view of a session.
type LiveStats struct {
	Elapsed   time.Duration
	Completed int
	WPM       float64
}

// Summary captures a finished session.
type Summary struct {
	Lang      string
	Words     int
	Completed int
	Elapsed   time.Duration
	WPM       float64
	Morse     string
	Decoded   string
	Quit      bool
}
