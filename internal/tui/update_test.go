package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/model"
	"termfolio/internal/typing"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	m := InitialModel(Options{
		Content:  model.DefaultContent(),
		Banner:   "whoami",
		Schedule: typing.Immediate,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(AppModel)
}

func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am
}

func typeLine(t *testing.T, m AppModel, line string) AppModel {
	t.Helper()
	for _, r := range line {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func enter(t *testing.T, m AppModel, line string) AppModel {
	t.Helper()
	m = typeLine(t, m, line)
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestTypingTracksPending(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "who")
	assert.Equal(t, "who", m.Input.Value())
	assert.Equal(t, "who", m.Session.Pending())
}

func TestEnterRunsCommand(t *testing.T) {
	m := newTestModel(t)
	m = enter(t, m, "whoami")

	assert.Equal(t, "", m.Input.Value())
	assert.Equal(t, "", m.Session.Pending())

	h := m.Session.History()
	require.Len(t, h, 1)
	assert.Equal(t, "whoami", h[0].Command)
	assert.Equal(t, "V Vier (x0VIER) - IT Specialist & Automation Expert", h[0].Output)
}

func TestEnterUnknownCommand(t *testing.T) {
	m := newTestModel(t)
	m = enter(t, m, "  FOO ")

	h := m.Session.History()
	require.Len(t, h, 1)
	assert.True(t, h[0].Unknown)
	assert.Equal(t, "command not found: foo", h[0].Output)
	assert.Contains(t, m.View(), "command not found: foo")
}

func TestSectionCommand(t *testing.T) {
	m := newTestModel(t)
	m = enter(t, m, "skills")

	assert.Equal(t, model.Skills, m.Session.Section())
	assert.Empty(t, m.Session.History())
	assert.Contains(t, m.View(), "Skills & Technologies")
}

func TestClearCommand(t *testing.T) {
	m := newTestModel(t)
	m = enter(t, m, "ls")
	m = enter(t, m, "help")
	require.Len(t, m.Session.History(), 2)

	m = enter(t, m, "clear")
	assert.Empty(t, m.Session.History())
	assert.Contains(t, m.View(), "Welcome!")
}

func TestTabNavigation(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.About, m.Session.Section())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, model.Contact, m.Session.Section())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.Home, m.Session.Section())
}

func TestEscClearsInputFirst(t *testing.T) {
	m := newTestModel(t)
	m = enter(t, m, "projects")
	m = typeLine(t, m, "abc")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.Input.Value())
	assert.Equal(t, model.Projects, m.Session.Section())
}

func TestRecallKeys(t *testing.T) {
	m := newTestModel(t)
	m = enter(t, m, "ls")
	m = enter(t, m, "email")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "email", m.Input.Value())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "ls", m.Input.Value())
	assert.Equal(t, "ls", m.Session.Pending())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "", m.Input.Value())
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "?")
	assert.True(t, m.ShowHelp)
	assert.Contains(t, m.View(), "Press ? or Esc to close")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowHelp)

	// '?' after other input is just a character
	m = typeLine(t, m, "a?")
	assert.False(t, m.ShowHelp)
	assert.Equal(t, "a?", m.Input.Value())
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, m.Light)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.False(t, m.Light)
}

func TestBannerTicks(t *testing.T) {
	m := newTestModel(t)

	batch, ok := m.Banner.Init()().(tea.BatchMsg)
	require.True(t, ok)
	cmd := batch[0]

	for i := 0; cmd != nil && i < 20; i++ {
		var next tea.Model
		next, cmd = m.Update(cmd())
		m = next.(AppModel)
	}
	assert.True(t, m.Banner.Done())
	assert.Equal(t, "whoami", m.Banner.Text())
	assert.Equal(t, len("whoami"), m.Frame)
	assert.True(t, strings.Contains(m.View(), "whoami"))
}

func TestQuitStopsBanner(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	am := next.(AppModel)

	require.NotNil(t, cmd)
	assert.True(t, am.Quitting)
	assert.True(t, am.Banner.Stopped())
	assert.Equal(t, "", am.View())
}
