package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuimorse/internal/keyer"
	"github.com/verte-zerg/tuimorse/internal/model"
)

// DefaultBindings returns the stock key layout.
func DefaultBindings() model.KeyBindings {
	return model.KeyBindings{
		Straight:  []string{" "},
		Dot:       []string{".", ",", "z"},
		Dash:      []string{"-", "/", "x"},
		LetterSep: []string{"f"},
		WordSep:   []string{"j"},
		Backspace: []string{";", "backspace"},
		Quit:      []string{"q", "esc", "ctrl+c"},
	}
}

// MergeBindings fills empty entries of b from the defaults.
func MergeBindings(b model.KeyBindings) model.KeyBindings {
	def := DefaultBindings()
	pick := func(v, fallback []string) []string {
		if len(v) == 0 {
			return fallback
		}
		return v
	}
	return model.KeyBindings{
		Straight:  pick(b.Straight, def.Straight),
		Dot:       pick(b.Dot, def.Dot),
		Dash:      pick(b.Dash, def.Dash),
		LetterSep: pick(b.LetterSep, def.LetterSep),
		WordSep:   pick(b.WordSep, def.WordSep),
		Backspace: pick(b.Backspace, def.Backspace),
		Quit:      pick(b.Quit, def.Quit),
	}
}

// KeyMap binds terminal keys to trainer keys.
type KeyMap struct {
	mode     keyer.Mode
	bindings [7]key.Binding
}

var keyOrder = [7]keyer.Key{
	keyer.KeyStraight,
	keyer.KeyDot,
	keyer.KeyDash,
	keyer.KeyLetterSep,
	keyer.KeyWordSep,
	keyer.KeyBackspace,
	keyer.KeyQuit,
}

// NewKeyMap builds a key map for mode. Empty binding lists use the defaults.
func NewKeyMap(b model.KeyBindings, mode keyer.Mode) KeyMap {
	b = MergeBindings(b)
	lists := [7][]string{b.Straight, b.Dot, b.Dash, b.LetterSep, b.WordSep, b.Backspace, b.Quit}
	descs := [7]string{"key", "dot", "dash", "letter", "word", "erase", "quit"}

	km := KeyMap{mode: mode}
	for i, keys := range lists {
		km.bindings[i] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpName(keys[0]), descs[i]),
		)
	}
	// Only one of straight or dot/dash is live at a time.
	if mode == keyer.ModeDuration {
		km.bindings[1].SetEnabled(false)
		km.bindings[2].SetEnabled(false)
	} else {
		km.bindings[0].SetEnabled(false)
	}
	return km
}

// Resolve maps a key message to a trainer key.
func (km KeyMap) Resolve(msg tea.KeyMsg) (keyer.Key, bool) {
	for i, b := range km.bindings {
		if key.Matches(msg, b) {
			return keyOrder[i], true
		}
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return km.bindings[:]
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.bindings[:3], km.bindings[3:]}
}

func helpName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
