package typing

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Default intervals.
const (
	DefaultTypeInterval  = 120 * time.Millisecond
	DefaultBlinkInterval = 530 * time.Millisecond
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Scheduler turns "deliver msg after d" into a command.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// Timer delivers msg after d using the Bubble Tea runtime.
func Timer(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Immediate delivers msg as soon as the command runs.
func Immediate(_ time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// TypeMsg reveals the next rune.
type TypeMsg struct {
	ID  int
	tag int
}

// BlinkMsg toggles the cursor.
type BlinkMsg struct {
	ID  int
	tag int
}

// Model is a banner that types itself out and keeps a cursor blinking
// until Stop is called. Each pending timer carries a tag; Stop bumps the
// tags so any tick already in flight is ignored and nothing reschedules.
type Model struct {
	TypeInterval  time.Duration
	BlinkInterval time.Duration
	CursorChar    string
	Schedule      Scheduler

	id       int
	typer    Typewriter
	cursor   Cursor
	typeTag  int
	blinkTag int
	stopped  bool
}

// New creates a banner for target.
func New(target string) Model {
	return Model{
		TypeInterval:  DefaultTypeInterval,
		BlinkInterval: DefaultBlinkInterval,
		CursorChar:    "█",
		Schedule:      Timer,
		id:            nextID(),
		typer:         NewTypewriter(target),
		cursor:        Cursor{visible: true},
	}
}

// ID identifies this model's ticks.
func (m Model) ID() int { return m.id }

// Text returns the revealed prefix.
func (m Model) Text() string { return m.typer.Text() }

// Target returns the full banner text.
func (m Model) Target() string { return m.typer.Target() }

// Done reports whether typing has finished.
func (m Model) Done() bool { return m.typer.Done() }

// CursorVisible reports the cursor's blink state.
func (m Model) CursorVisible() bool { return m.cursor.Visible() }

// Stopped reports whether Stop was called.
func (m Model) Stopped() bool { return m.stopped }

// Init schedules the first reveal and the first blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.scheduleType(), m.scheduleBlink())
}

// Stop cancels both timers. Ticks delivered afterwards are dropped.
func (m *Model) Stop() {
	m.stopped = true
	m.typeTag++
	m.blinkTag++
}

// Update handles this model's ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TypeMsg:
		if m.stopped || msg.ID != m.id || msg.tag != m.typeTag {
			return m, nil
		}
		return m.Tick()
	case BlinkMsg:
		if m.stopped || msg.ID != m.id || msg.tag != m.blinkTag {
			return m, nil
		}
		return m.Blink()
	}
	return m, nil
}

// Tick reveals one rune and schedules the next reveal while any remain.
func (m Model) Tick() (Model, tea.Cmd) {
	if m.stopped || !m.typer.Advance() {
		return m, nil
	}
	m.typeTag++
	return m, m.scheduleType()
}

// Blink toggles the cursor and schedules the next toggle.
func (m Model) Blink() (Model, tea.Cmd) {
	if m.stopped {
		return m, nil
	}
	m.cursor.Toggle()
	m.blinkTag++
	return m, m.scheduleBlink()
}

func (m Model) scheduleType() tea.Cmd {
	if m.stopped || m.typer.Done() {
		return nil
	}
	return m.Schedule(m.TypeInterval, TypeMsg{ID: m.id, tag: m.typeTag})
}

func (m Model) scheduleBlink() tea.Cmd {
	if m.stopped {
		return nil
	}
	return m.Schedule(m.BlinkInterval, BlinkMsg{ID: m.id, tag: m.blinkTag})
}

// View renders the revealed text followed by the cursor, or a blank of
// the same width while the cursor is hidden.
func (m Model) View() string {
	if m.cursor.Visible() && !m.stopped {
		return m.typer.Text() + m.CursorChar
	}
	return m.typer.Text() + " "
}
