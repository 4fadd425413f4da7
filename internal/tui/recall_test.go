package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecallEmpty(t *testing.T) {
	r := NewRecall()
	_, ok := r.Up()
	assert.False(t, ok)
	_, ok = r.Down()
	assert.False(t, ok)
}

func TestRecallWalk(t *testing.T) {
	r := NewRecall()
	r.Add("help")
	r.Add("")
	r.Add("ls")
	r.Add("ls")
	r.Add("whoami")

	line, ok := r.Up()
	assert.True(t, ok)
	assert.Equal(t, "whoami", line)
	line, _ = r.Up()
	assert.Equal(t, "ls", line)
	line, _ = r.Up()
	assert.Equal(t, "help", line)
	line, _ = r.Up()
	assert.Equal(t, "help", line, "stays on the oldest line")

	line, _ = r.Down()
	assert.Equal(t, "ls", line)
	line, _ = r.Down()
	assert.Equal(t, "whoami", line)
	line, ok = r.Down()
	assert.True(t, ok)
	assert.Equal(t, "", line, "past the newest line clears the input")
	_, ok = r.Down()
	assert.False(t, ok)
}

func TestRecallBounded(t *testing.T) {
	r := NewRecall()
	for i := 0; i < maxRecall+10; i++ {
		r.Add(string(rune('a'+i%26)) + string(rune('0'+i%10)) + string(rune(i)))
	}
	assert.Len(t, r.entries, maxRecall)
}
