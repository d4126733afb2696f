// Package session drives a training run: it applies interpreted key actions to
// the Morse buffer, detects completed words and keeps live statistics.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/tuimorse/internal/keyer"
	"github.com/verte-zerg/tuimorse/internal/model"
	"github.com/verte-zerg/tuimorse/internal/morse"
	"github.com/verte-zerg/tuimorse/internal/stats"
)

// DefaultRefresh is the live stats cadence.
const DefaultRefresh = 100 * time.Millisecond

// ErrNoWords is returned when a session is started without target words.
var ErrNoWords = errors.New("session needs at least one word")

// Field names a region of the presentation.
type Field int

const (
	FieldTarget Field = iota
	FieldHint
	FieldProgress
	FieldMorse
	FieldDecoded
	FieldElapsed
	FieldWPM
)

// Sink receives field content whenever it changes.
type Sink interface {
	Show(f Field, content string)
}

// State is the controller state.
type State int

const (
	StateAwaiting State = iota
	StateComplete
)

func (s State) String() string {
	if s == StateComplete {
		return "complete"
	}
	return "awaiting"
}

// Options tune a session.
type Options struct {
	Lang    string
	Refresh time.Duration
	Hint    bool
}

// Controller owns the state of one training run. It is not safe for
// concurrent use; the UI loop is its only caller.
type Controller struct {
	opts  Options
	sink  Sink
	words []string

	index   int
	buffer  morse.Buffer
	decoded string

	state       State
	quit        bool
	startedAt   time.Time
	endedAt     time.Time
	lastRefresh time.Time
}

// New starts a session at now and pushes the initial fields to sink.
func New(words []string, sink Sink, opts Options, now time.Time) (*Controller, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if opts.Refresh <= 0 {
		opts.Refresh = DefaultRefresh
	}
	c := &Controller{
		opts:        opts,
		sink:        sink,
		words:       append([]string(nil), words...),
		startedAt:   now,
		lastRefresh: now,
	}
	c.showWord()
	c.showBuffer()
	c.showStats(now)
	return c, nil
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Done reports whether the session has ended.
func (c *Controller) Done() bool {
	return c.state == StateComplete
}

// Index returns the index of the word being keyed.
func (c *Controller) Index() int {
	return c.index
}

// Target returns the word being keyed, or "" once the session is complete.
func (c *Controller) Target() string {
	if c.index >= len(c.words) {
		return ""
	}
	return c.words[c.index]
}

// Buffer returns the raw Morse buffer.
func (c *Controller) Buffer() string {
	return c.buffer.String()
}

// Decoded returns the decoded buffer.
func (c *Controller) Decoded() string {
	return c.decoded
}

// Apply runs actions in order. Completion is checked after every mutation so
// a completed word is cleared before the next action touches the buffer.
// Actions after the session ends are ignored.
func (c *Controller) Apply(actions []keyer.Action, now time.Time) {
	for _, a := range actions {
		if c.Done() {
			return
		}
		c.apply(a, now)
	}
}

func (c *Controller) apply(a keyer.Action, now time.Time) {
	var changed bool
	switch a {
	case keyer.ActionDot:
		changed = c.buffer.Append(morse.Dot)
	case keyer.ActionDash:
		changed = c.buffer.Append(morse.Dash)
	case keyer.ActionLetterSep:
		changed = c.buffer.Append(morse.LetterSep)
	case keyer.ActionWordSep:
		changed = c.buffer.Append(morse.WordSep)
	case keyer.ActionBackspace:
		changed = c.buffer.Backspace()
	case keyer.ActionQuit:
		c.Quit(now)
		return
	}
	if !changed {
		return
	}
	c.decoded = c.buffer.Decode()
	c.showBuffer()
	c.checkWord(now)
}

func (c *Controller) checkWord(now time.Time) {
	if strings.TrimSpace(c.decoded) != c.words[c.index] {
		return
	}
	c.index++
	if c.index >= len(c.words) {
		// The last buffer stays for the summary.
		c.finish(now, false)
		return
	}
	c.buffer.Reset()
	c.decoded = ""
	c.showWord()
	c.showBuffer()
}

// Quit ends the session immediately, abandoning the current word.
func (c *Controller) Quit(now time.Time) {
	if c.Done() {
		return
	}
	c.finish(now, true)
}

func (c *Controller) finish(now time.Time, quit bool) {
	c.state = StateComplete
	c.quit = quit
	c.endedAt = now
	c.showStats(now)
}

// Tick refreshes the live stats when the refresh interval has passed and
// reports whether it did.
func (c *Controller) Tick(now time.Time) bool {
	if c.Done() || now.Sub(c.lastRefresh) < c.opts.Refresh {
		return false
	}
	c.showStats(now)
	return true
}

// NextRefresh returns the time left until the next stats refresh is due.
func (c *Controller) NextRefresh(now time.Time) time.Duration {
	left := c.opts.Refresh - now.Sub(c.lastRefresh)
	if left < 0 {
		return 0
	}
	return left
}

// Stats returns live statistics at now. Only fully completed words count.
func (c *Controller) Stats(now time.Time) model.LiveStats {
	return stats.Live(c.Completed(), c.elapsed(now))
}

// Completed returns the number of finished words.
func (c *Controller) Completed() int {
	return c.index
}

// Summary returns the final report. Speed is computed over the whole word
// list, whether or not every word was finished.
func (c *Controller) Summary(now time.Time) model.Summary {
	elapsed := c.elapsed(now)
	return model.Summary{
		Lang:      c.opts.Lang,
		Words:     len(c.words),
		Completed: c.Completed(),
		Elapsed:   elapsed,
		WPM:       stats.WordsPerMinute(len(c.words), elapsed),
		Morse:     c.buffer.String(),
		Decoded:   c.decoded,
		Quit:      c.quit,
	}
}

func (c *Controller) elapsed(now time.Time) time.Duration {
	if c.Done() {
		now = c.endedAt
	}
	if now.Before(c.startedAt) {
		return 0
	}
	return now.Sub(c.startedAt)
}

func (c *Controller) showWord() {
	if c.sink == nil {
		return
	}
	target := c.Target()
	c.sink.Show(FieldTarget, target)
	c.sink.Show(FieldProgress, progress(c.index, len(c.words)))
	if c.opts.Hint {
		c.sink.Show(FieldHint, morse.EncodeWord(target))
	}
}

func (c *Controller) showBuffer() {
	if c.sink == nil {
		return
	}
	c.sink.Show(FieldMorse, c.buffer.String())
	c.sink.Show(FieldDecoded, c.decoded)
}

func (c *Controller) showStats(now time.Time) {
	c.lastRefresh = now
	if c.sink == nil {
		return
	}
	live := c.Stats(now)
	c.sink.Show(FieldElapsed, stats.FormatElapsed(live.Elapsed))
	c.sink.Show(FieldWPM, stats.FormatWPM(live.WPM))
}

func progress(index, total int) string {
	shown := index + 1
	if shown > total {
		shown = total
	}
	return fmt.Sprintf("Word %d/%d", shown, total)
}
