package tui

import (
	"termfolio/internal/model"
	"termfolio/internal/shell"
	"termfolio/internal/typing"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Input.Width = msg.Width - 6
		m.SkillBar.Width = clamp(msg.Width/3, 10, 40)
		m.layout()
		return m, nil

	case typing.TypeMsg:
		m.Banner, cmd = m.Banner.Update(msg)
		m.Frame++
		return m, cmd

	case typing.BlinkMsg:
		m.Banner, cmd = m.Banner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink for the input line
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.ShowHelp {
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "?", "esc", "enter", "q":
			m.ShowHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		return m.quit()

	case "?":
		// Only open help when not typing; otherwise '?' is just a character
		if m.Input.Value() == "" {
			m.ShowHelp = true
			return m, nil
		}

	case "tab":
		m.Session.Navigate(m.Session.Section().Next())
		m.layout()
		return m, nil

	case "shift+tab":
		m.Session.Navigate(m.Session.Section().Prev())
		m.layout()
		return m, nil

	case "esc":
		if m.Input.Value() != "" {
			m.Input.Reset()
			m.Session.SetPending("")
			return m, nil
		}
		m.Session.Navigate(model.Home)
		m.layout()
		return m, nil

	case "ctrl+t":
		m.Light = !m.Light
		m.layout()
		return m, nil

	case "up":
		if line, ok := m.Recall.Up(); ok {
			m.setInput(line)
		}
		return m, nil

	case "down":
		if line, ok := m.Recall.Down(); ok {
			m.setInput(line)
		}
		return m, nil

	case "pgup", "pgdown", "ctrl+u":
		m.Scrollback, cmd = m.Scrollback.Update(msg)
		return m, cmd

	case "enter":
		m.submit()
		return m, nil
	}

	m.Input, cmd = m.Input.Update(msg)
	m.Session.SetPending(m.Input.Value())
	return m, cmd
}

func (m *AppModel) setInput(line string) {
	m.Input.SetValue(line)
	m.Input.CursorEnd()
	m.Session.SetPending(line)
}

// submit hands the pending line to the interpreter and resets the input.
func (m *AppModel) submit() {
	line := m.Input.Value()
	m.Session.SetPending(line)
	before := m.Session.Section()

	res := m.Session.Submit()
	m.Recall.Add(line)
	m.Input.Reset()

	if res.Kind == shell.Unrecognized {
		m.log.Infow("unrecognized command", "input", shell.Normalize(line))
	} else {
		m.log.Debugw("command executed",
			"command", shell.Normalize(line),
			"kind", res.Kind.String(),
			"from", before.String(),
			"to", m.Session.Section().String(),
			"output_len", len(res.Text),
		)
	}

	m.layout()
	m.Scrollback.GotoBottom()
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.Banner.Stop()
	m.Quitting = true
	m.log.Debugw("quitting", "history", len(m.Session.History()))
	return m, tea.Quit
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
