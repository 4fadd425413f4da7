// Package typing animates a banner being typed out behind a blinking cursor.
package typing

// Typewriter reveals a fixed target one rune at a time. It only moves
// forward and cannot be restarted.
type Typewriter struct {
	target   []rune
	revealed int
}

// NewTypewriter returns a typewriter with nothing revealed yet.
func NewTypewriter(target string) Typewriter {
	return Typewriter{target: []rune(target)}
}

// Target returns the full string being typed.
func (t Typewriter) Target() string { return string(t.target) }

// Text returns the revealed prefix.
func (t Typewriter) Text() string { return string(t.target[:t.revealed]) }

// Done reports whether the whole target is visible.
func (t Typewriter) Done() bool { return t.revealed >= len(t.target) }

// Advance reveals one more rune. It returns false once Done.
func (t *Typewriter) Advance() bool {
	if t.Done() {
		return false
	}
	t.revealed++
	return true
}

// Cursor is a blinking caret. It toggles forever.
type Cursor struct {
	visible bool
}

// Visible reports whether the caret is currently drawn.
func (c Cursor) Visible() bool { return c.visible }

// Toggle flips visibility.
func (c *Cursor) Toggle() { c.visible = !c.visible }
