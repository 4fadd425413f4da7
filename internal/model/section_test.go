package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	for _, s := range Sections() {
		got, err := ParseSection(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseSection("  SKILLS ")
	require.NoError(t, err)
	assert.Equal(t, Skills, got)

	got, err = ParseSection("hero")
	require.NoError(t, err)
	assert.Equal(t, Home, got)

	_, err = ParseSection("blog")
	require.ErrorIs(t, err, ErrUnknownSection)
}

func TestSectionCycle(t *testing.T) {
	assert.Equal(t, About, Home.Next())
	assert.Equal(t, Home, Contact.Next())
	assert.Equal(t, Contact, Home.Prev())

	s := Home
	for range Sections() {
		s = s.Next()
	}
	assert.Equal(t, Home, s)
}

func TestSectionJSON(t *testing.T) {
	data, err := json.Marshal(struct{ Section Section }{Projects})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Section":"projects"}`, string(data))

	var out struct{ Section Section }
	require.NoError(t, json.Unmarshal([]byte(`{"Section":"contact"}`), &out))
	assert.Equal(t, Contact, out.Section)

	require.Error(t, json.Unmarshal([]byte(`{"Section":"nowhere"}`), &out))
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "Projects", Projects.Title())
	assert.Equal(t, "section(42)", Section(42).String())
}
