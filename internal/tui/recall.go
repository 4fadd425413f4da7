package tui

const maxRecall = 100

// Recall walks back through previously submitted lines with up/down.
type Recall struct {
	entries []string
	index   int // -1 when not navigating
}

// NewRecall creates an empty recall list.
func NewRecall() Recall {
	return Recall{index: -1}
}

// Add records a submitted line, skipping blanks and immediate repeats.
func (r *Recall) Add(line string) {
	r.index = -1
	if line == "" {
		return
	}
	if n := len(r.entries); n > 0 && r.entries[n-1] == line {
		return
	}
	r.entries = append(r.entries, line)
	if len(r.entries) > maxRecall {
		r.entries = r.entries[len(r.entries)-maxRecall:]
	}
}

// Up moves to an older line.
func (r *Recall) Up() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	if r.index == -1 {
		r.index = len(r.entries) - 1
	} else if r.index > 0 {
		r.index--
	}
	return r.entries[r.index], true
}

// Down moves to a newer line; past the newest it yields an empty line.
func (r *Recall) Down() (string, bool) {
	if r.index == -1 {
		return "", false
	}
	if r.index < len(r.entries)-1 {
		r.index++
		return r.entries[r.index], true
	}
	r.index = -1
	return "", true
}
