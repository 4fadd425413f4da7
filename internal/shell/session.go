package shell

import "termfolio/internal/model"

// Session is the application state holder: the active section, the
// scrollback and the pending input line. All mutation goes through its
// methods.
type Session struct {
	interp  *Interpreter
	section model.Section
	history *History
	pending string
}

// NewSession starts on the home section with an empty scrollback.
func NewSession(in *Interpreter, historyLimit int) *Session {
	return &Session{
		interp:  in,
		section: model.Home,
		history: NewHistory(historyLimit),
	}
}

// Interpreter returns the interpreter the session submits to.
func (s *Session) Interpreter() *Interpreter { return s.interp }

// Section returns the active section.
func (s *Session) Section() model.Section { return s.section }

// Navigate switches sections directly, without going through a command.
func (s *Session) Navigate(sec model.Section) { s.section = sec }

// SetSection implements Target.
func (s *Session) SetSection(sec model.Section) { s.section = sec }

// ClearHistory implements Target.
func (s *Session) ClearHistory() { s.history.Clear() }

// AppendHistory implements Target.
func (s *Session) AppendHistory(e HistoryEntry) { s.history.Append(e) }

// History returns the scrollback, oldest first.
func (s *Session) History() []HistoryEntry { return s.history.Entries() }

// SetPending replaces the pending input line.
func (s *Session) SetPending(line string) { s.pending = line }

// Pending returns the pending input line.
func (s *Session) Pending() string { return s.pending }

// Submit executes the pending line and resets it, whatever the outcome.
func (s *Session) Submit() Result {
	line := s.pending
	s.pending = ""
	return s.interp.Apply(s, line)
}

// Run executes line directly and returns the text to display.
func (s *Session) Run(line string) string {
	s.pending = ""
	return s.interp.Execute(s, line)
}
