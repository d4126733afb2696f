// Package tui provides the Bubble Tea training interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuimorse/internal/keyer"
	"github.com/verte-zerg/tuimorse/internal/model"
	"github.com/verte-zerg/tuimorse/internal/session"
	"github.com/verte-zerg/tuimorse/internal/stats"
)

// DefaultPoll is the key sampling period in duration mode.
const DefaultPoll = 5 * time.Millisecond

// Sidetone sounds keyed elements. Calls must not block.
type Sidetone interface {
	Dit()
	Dah()
}

type silentTone struct{}

func (silentTone) Dit() {}
func (silentTone) Dah() {}

type pollMsg time.Time

type statsMsg time.Time

// Model implements the Bubble Tea training UI. It is also the session's
// presentation sink.
type Model struct {
	config  model.Config
	keys    KeyMap
	help    help.Model
	interp  keyer.Interpreter
	tracker *keyer.RepeatTracker
	tone    Sidetone
	ctrl    *session.Controller
	now     func() time.Time

	fields     map[session.Field]string
	lastSample time.Time

	width  int
	height int
}

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	targetStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	morseStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB4CA"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).Width(9)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs the training UI for words. A nil tone plays nothing and
// a nil clock uses time.Now. Duration mode is always silent: elements settle
// long after the key is released.
func NewModel(cfg model.Config, words []string, tone Sidetone, now func() time.Time) (*Model, error) {
	mode, err := keyer.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	interp, err := keyer.New(mode, cfg.Threshold)
	if err != nil {
		return nil, err
	}
	if tone == nil || mode == keyer.ModeDuration {
		tone = silentTone{}
	}
	if now == nil {
		now = time.Now
	}
	if cfg.Poll <= 0 {
		cfg.Poll = DefaultPoll
	}
	m := &Model{
		config: cfg,
		keys:   NewKeyMap(cfg.Keys, mode),
		help:   help.New(),
		interp: interp,
		tone:   tone,
		now:    now,
		fields: make(map[session.Field]string),
	}
	start := now()
	if mode == keyer.ModeDuration {
		m.tracker = keyer.NewRepeatTracker(keyer.RepeatConfig{
			RepeatDelay:    cfg.RepeatDelay,
			RepeatInterval: cfg.RepeatPeriod,
		})
		m.lastSample = start.Add(-m.tracker.Lag())
	}
	ctrl, err := session.New(words, m, session.Options{
		Lang:    cfg.Lang,
		Refresh: cfg.Refresh,
		Hint:    cfg.Hint,
	}, start)
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl
	return m, nil
}

// Show implements session.Sink.
func (m *Model) Show(f session.Field, content string) {
	m.fields[f] = content
}

// Done reports whether the session has ended.
func (m *Model) Done() bool {
	return m.ctrl.Done()
}

// Summary returns the session report.
func (m *Model) Summary() model.Summary {
	return m.ctrl.Summary(m.now())
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.statsCmd(m.ctrl.NextRefresh(m.now()))}
	if m.tracker != nil {
		cmds = append(cmds, m.pollCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case pollMsg:
		return m, m.handlePoll(time.Time(msg))
	case statsMsg:
		if m.ctrl.Done() {
			return m, nil
		}
		now := time.Time(msg)
		m.ctrl.Tick(now)
		return m, m.statsCmd(m.ctrl.NextRefresh(now))
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	k, ok := m.keys.Resolve(msg)
	if !ok {
		return nil
	}
	now := m.now()
	if m.tracker != nil && k != keyer.KeyQuit {
		m.tracker.Observe(k, now)
	}
	return m.apply(m.interp.Press(k, now), now)
}

func (m *Model) handlePoll(now time.Time) tea.Cmd {
	if m.ctrl.Done() {
		return nil
	}
	// Holds are only settled Lag after the fact.
	at := now.Add(-m.tracker.Lag())
	held := m.tracker.Held(m.lastSample, at)
	m.lastSample = at
	if cmd := m.apply(m.interp.Sample(held, at), now); cmd != nil {
		return cmd
	}
	return m.pollCmd()
}

func (m *Model) apply(actions []keyer.Action, now time.Time) tea.Cmd {
	if len(actions) == 0 {
		return nil
	}
	for _, a := range actions {
		switch a {
		case keyer.ActionDot:
			m.tone.Dit()
		case keyer.ActionDash:
			m.tone.Dah()
		}
	}
	m.ctrl.Apply(actions, now)
	if m.ctrl.Done() {
		return tea.Quit
	}
	return nil
}

func (m *Model) pollCmd() tea.Cmd {
	return tea.Tick(m.config.Poll, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m *Model) statsCmd(wait time.Duration) tea.Cmd {
	if wait < time.Millisecond {
		wait = time.Millisecond
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return statsMsg(t)
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.ctrl.Done() {
		return ""
	}
	contentWidth := m.width * 70 / 100
	if m.width == 0 {
		contentWidth = 80
	}
	if contentWidth < 20 {
		contentWidth = 20
	}
	content := m.renderContent(contentWidth)
	footer := footerStyle.Render(m.help.View(m.keys))
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}

	card := m.renderCard()
	body := content
	if card != "" && lipgloss.Height(content)+lipgloss.Height(card)+3 <= m.height {
		body = lipgloss.JoinVertical(lipgloss.Left, content, "", card)
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	view := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return view + "\n" + footerLine
}

func (m *Model) renderContent(width int) string {
	valueWidth := width - labelStyle.GetWidth()
	target := m.fields[session.FieldTarget]
	rows := []string{
		footerStyle.Render(m.fields[session.FieldProgress]),
		m.row("Target", targetStyle.Render(target)),
	}
	if hint, ok := m.fields[session.FieldHint]; ok {
		rows = append(rows, m.row("Hint", pendingStyle.Render(hint)))
	}
	rows = append(rows,
		m.row("Morse", wrapStyledRunes(styleMorse(m.fields[session.FieldMorse]), valueWidth)),
		m.row("Decoded", wrapStyledRunes(styleDecoded(target, m.fields[session.FieldDecoded]), valueWidth)),
		"",
		footerStyle.Render(fmt.Sprintf("%s   %s", m.fields[session.FieldElapsed], m.fields[session.FieldWPM])),
	)
	return lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n"))
}

func (m *Model) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label+":"), value)
}

func (m *Model) renderCard() string {
	if m.width == 0 {
		return ""
	}
	lines := stats.ReferenceLines(stats.PerRowFor(m.width))
	return pendingStyle.Render(strings.Join(lines, "\n"))
}
