package typing

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypewriterRevealsEveryPrefix(t *testing.T) {
	tw := NewTypewriter("whoami")
	states := []string{tw.Text()}
	for tw.Advance() {
		states = append(states, tw.Text())
	}

	assert.Equal(t, []string{"", "w", "wh", "who", "whoa", "whoam", "whoami"}, states)
	assert.True(t, tw.Done())
	assert.False(t, tw.Advance())
}

func TestTypewriterRunes(t *testing.T) {
	tw := NewTypewriter("héllo✓")
	n := 0
	for tw.Advance() {
		n++
	}
	assert.Equal(t, 6, n)
	assert.Equal(t, "héllo✓", tw.Text())
}

func TestTypewriterEmpty(t *testing.T) {
	tw := NewTypewriter("")
	assert.True(t, tw.Done())
	assert.False(t, tw.Advance())
}

// pumpTyping follows the reveal timer until it stops rescheduling.
func pumpTyping(t *testing.T, m Model) (Model, []string) {
	t.Helper()
	states := []string{m.Text()}
	cmd := m.scheduleType()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 1000, "typing never finished")
		m, cmd = m.Update(cmd())
		states = append(states, m.Text())
	}
	return m, states
}

func TestModelTypesThenStopsTicking(t *testing.T) {
	m := New("whoami")
	m.Schedule = Immediate

	m, states := pumpTyping(t, m)

	assert.Equal(t, []string{"", "w", "wh", "who", "whoa", "whoam", "whoami"}, states)
	assert.True(t, m.Done())

	// A stray reveal after completion changes nothing.
	m2, cmd := m.Tick()
	assert.Nil(t, cmd)
	assert.Equal(t, "whoami", m2.Text())
}

func TestModelEmptyTargetNeverTypes(t *testing.T) {
	m := New("")
	m.Schedule = Immediate

	assert.True(t, m.Done())
	assert.Nil(t, m.scheduleType())
	assert.NotNil(t, m.Init(), "cursor still blinks")
}

func TestModelCursorBlinksUntilStopped(t *testing.T) {
	m := New("whoami")
	m.Schedule = Immediate

	visible := m.CursorVisible()
	cmd := m.scheduleBlink()
	for i := 0; i < 50; i++ {
		require.NotNil(t, cmd)
		m, cmd = m.Update(cmd())
		visible = !visible
		assert.Equal(t, visible, m.CursorVisible())
	}

	pending := cmd()
	m.Stop()
	before := m.CursorVisible()
	m, cmd = m.Update(pending)
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.CursorVisible())
	assert.True(t, m.Stopped())
}

func TestModelStopCancelsTyping(t *testing.T) {
	m := New("whoami")
	m.Schedule = Immediate

	m, _ = m.Update(m.scheduleType()())
	m, _ = m.Update(m.scheduleType()())
	require.Equal(t, "wh", m.Text())

	pending := m.scheduleType()()
	m.Stop()
	m, cmd := m.Update(pending)

	assert.Nil(t, cmd)
	assert.Equal(t, "wh", m.Text())
	assert.Nil(t, m.Init())
}

func TestModelIgnoresForeignAndStaleTicks(t *testing.T) {
	a := New("ab")
	b := New("ab")
	a.Schedule = Immediate
	b.Schedule = Immediate

	a, _ = a.Update(b.scheduleType()())
	assert.Equal(t, "", a.Text(), "tick for another model")

	stale := a.scheduleType()()
	a, _ = a.Update(stale)
	require.Equal(t, "a", a.Text())
	a, cmd := a.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, "a", a.Text(), "same tick delivered twice")

	var other tea.Msg = tea.KeyMsg{}
	_, cmd = a.Update(other)
	assert.Nil(t, cmd)
}

func TestModelView(t *testing.T) {
	m := New("hi")
	m.Schedule = Immediate
	m, _ = pumpTyping(t, m)

	assert.Equal(t, "hi█", m.View())
	m, _ = m.Blink()
	assert.Equal(t, "hi ", m.View())
}
