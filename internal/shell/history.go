package shell

// HistoryEntry is one submitted line and what it printed.
type HistoryEntry struct {
	Command string `json:"command"` // Raw text as typed
	Output  string `json:"output"`
	Unknown bool   `json:"unknown,omitempty"` // No command matched
}

// History is the terminal scrollback. Entries are kept in submission order
// and are only ever removed all at once by Clear, or from the front when a
// limit is set.
type History struct {
	entries []HistoryEntry
	limit   int
}

// NewHistory creates a scrollback holding at most limit entries.
// A limit of 0 or less means unbounded.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Append adds an entry at the end.
func (h *History) Append(e HistoryEntry) {
	h.entries = append(h.entries, e)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = append([]HistoryEntry(nil), h.entries[len(h.entries)-h.limit:]...)
	}
}

// Clear removes every entry.
func (h *History) Clear() {
	h.entries = nil
}

// Entries returns a copy of the scrollback, oldest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports the number of entries.
func (h *History) Len() int { return len(h.entries) }
