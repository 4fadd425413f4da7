package shell

import (
	"fmt"
	"sort"
	"strings"

	"termfolio/internal/model"
)

// Kind discriminates the effect a command has once it runs.
type Kind int

const (
	ShowOutput    Kind = iota // Print Text into the scrollback
	ChangeSection             // Switch the active section, print nothing
	ClearHistory              // Wipe the scrollback, print nothing
	Unrecognized              // No command matched; Text holds the message
)

func (k Kind) String() string {
	switch k {
	case ShowOutput:
		return "output"
	case ChangeSection:
		return "section"
	case ClearHistory:
		return "clear"
	case Unrecognized:
		return "unrecognized"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Result is the value a command effect produces. Exactly one of Text or
// Section is meaningful, depending on Kind.
type Result struct {
	Kind    Kind
	Text    string
	Section model.Section
}

// Output returns a ShowOutput result.
func Output(text string) Result { return Result{Kind: ShowOutput, Text: text} }

// GoTo returns a ChangeSection result.
func GoTo(s model.Section) Result { return Result{Kind: ChangeSection, Section: s} }

// Clear returns a ClearHistory result.
func Clear() Result { return Result{Kind: ClearHistory} }

// NotFound returns the result for input that matched no command.
func NotFound(name string) Result {
	return Result{Kind: Unrecognized, Text: NotFoundMessage(name)}
}

// NotFoundMessage formats the message shown for an unknown command.
func NotFoundMessage(name string) string {
	return "command not found: " + name
}

// Command is one entry of the interpreter's table.
type Command struct {
	Name        string
	Description string
	Effect      func() Result
}

// DefaultCommands builds the built-in command table over the given content.
func DefaultCommands(c model.Content) []Command {
	p := c.Profile
	cmds := []Command{
		{Name: "whoami", Description: "Print who I am", Effect: func() Result {
			return Output(fmt.Sprintf("%s (%s) - %s", p.Name, p.Handle, p.Title))
		}},
		{Name: "ls", Description: "List files", Effect: func() Result {
			return Output(strings.Join(c.Files, "  "))
		}},
		{Name: "github", Description: "Print my GitHub profile", Effect: func() Result {
			return Output(p.GitHubURL)
		}},
		{Name: "email", Description: "Print my email address", Effect: func() Result {
			return Output(p.Email)
		}},
		{Name: "clear", Description: "Clear the terminal", Effect: Clear},
	}
	for _, s := range model.Sections() {
		s := s
		cmds = append(cmds, Command{
			Name:        s.String(),
			Description: "Show the " + s.String() + " section",
			Effect:      func() Result { return GoTo(s) },
		})
	}

	// help closes over the finished table so it lists itself too
	help := Command{Name: "help", Description: "List available commands"}
	cmds = append(cmds, help)
	listing := helpText(cmds)
	cmds[len(cmds)-1].Effect = func() Result { return Output(listing) }
	return cmds
}

func helpText(cmds []Command) string {
	sorted := make([]Command, len(cmds))
	copy(sorted, cmds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	width := 0
	for _, c := range sorted {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available commands:")
	for _, c := range sorted {
		fmt.Fprintf(&b, "\n  %-*s  %s", width, c.Name, c.Description)
	}
	return b.String()
}
