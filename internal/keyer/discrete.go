package keyer

import "time"

// Discrete maps key-press events straight to actions.
type Discrete struct{}

// NewDiscrete returns a discrete-mode interpreter.
func NewDiscrete() *Discrete {
	return &Discrete{}
}

// Mode implements Interpreter.
func (*Discrete) Mode() Mode {
	return ModeDiscrete
}

// Press implements Interpreter.
func (*Discrete) Press(k Key, _ time.Time) []Action {
	var a Action
	switch k {
	case KeyDot:
		a = ActionDot
	case KeyDash:
		a = ActionDash
	case KeyLetterSep:
		a = ActionLetterSep
	case KeyWordSep:
		a = ActionWordSep
	case KeyBackspace:
		a = ActionBackspace
	case KeyQuit:
		a = ActionQuit
	default:
		return nil
	}
	return []Action{a}
}

// Sample is a no-op; discrete input never polls.
func (*Discrete) Sample(KeySet, time.Time) []Action {
	return nil
}
