package shell

import (
	"fmt"
	"strings"

	"termfolio/internal/model"
)

// Target is the state a command result is applied to.
type Target interface {
	SetSection(model.Section)
	ClearHistory()
	AppendHistory(HistoryEntry)
}

// Interpreter maps normalized command names to their effects. The table is
// fixed at construction.
type Interpreter struct {
	commands map[string]Command
	names    []string
}

// NewInterpreter builds an interpreter from a command table. Names are
// normalized; an empty or duplicate name is an error.
func NewInterpreter(cmds []Command) (*Interpreter, error) {
	in := &Interpreter{commands: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		name := Normalize(c.Name)
		if name == "" {
			return nil, fmt.Errorf("command with empty name")
		}
		if _, dup := in.commands[name]; dup {
			return nil, fmt.Errorf("duplicate command %q", name)
		}
		if c.Effect == nil {
			return nil, fmt.Errorf("command %q has no effect", name)
		}
		c.Name = name
		in.commands[name] = c
		in.names = append(in.names, name)
	}
	return in, nil
}

// Default returns an interpreter over DefaultCommands.
func Default(c model.Content) *Interpreter {
	in, err := NewInterpreter(DefaultCommands(c))
	if err != nil {
		panic(err)
	}
	return in
}

// Normalize trims surrounding whitespace and lowercases the input.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Names returns the command names in table order.
func (in *Interpreter) Names() []string {
	out := make([]string, len(in.names))
	copy(out, in.names)
	return out
}

// Lookup finds a command by its exact normalized name.
func (in *Interpreter) Lookup(raw string) (Command, bool) {
	c, ok := in.commands[Normalize(raw)]
	return c, ok
}

// Resolve returns the result raw would produce without applying it.
func (in *Interpreter) Resolve(raw string) Result {
	name := Normalize(raw)
	c, ok := in.commands[name]
	if !ok {
		return NotFound(name)
	}
	return c.Effect()
}

// Apply runs raw against t and returns the result it applied. Commands
// that only change state leave the history untouched; everything else,
// including unknown input, is appended as a HistoryEntry unless the output
// is empty.
func (in *Interpreter) Apply(t Target, raw string) Result {
	res := in.Resolve(raw)
	switch res.Kind {
	case ChangeSection:
		t.SetSection(res.Section)
	case ClearHistory:
		t.ClearHistory()
	case Unrecognized:
		t.AppendHistory(HistoryEntry{Command: raw, Output: res.Text, Unknown: true})
	default:
		if res.Text != "" {
			t.AppendHistory(HistoryEntry{Command: raw, Output: res.Text})
		}
	}
	return res
}

// Execute is Apply reduced to the text shown to the user: the output for
// printing commands and unknown input, "" for state-only commands.
func (in *Interpreter) Execute(t Target, raw string) string {
	res := in.Apply(t, raw)
	if res.Kind == ChangeSection || res.Kind == ClearHistory {
		return ""
	}
	return res.Text
}
