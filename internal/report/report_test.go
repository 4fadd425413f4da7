package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"termfolio/internal/model"
)

func TestBar(t *testing.T) {
	assert.Equal(t, "[##########]", Bar(1, 10))
	assert.Equal(t, "[----------]", Bar(0, 10))
	assert.Equal(t, "[########--]", Bar(0.8, 10))
	assert.Equal(t, "[##########]", Bar(7, 10))
	assert.Equal(t, "[-]", Bar(-1, 0))
}

func TestWrap(t *testing.T) {
	out := Wrap("one two three four five", 9)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 9)
	}
}

func TestGenerateCoversEverySection(t *testing.T) {
	c := model.DefaultContent()
	out := Generate(c, 60)

	for _, s := range model.Sections() {
		assert.Contains(t, out, "== "+s.Title()+" ==")
	}
	for _, p := range c.Projects {
		assert.Contains(t, out, p.Name)
	}
	for _, sk := range c.Skills {
		assert.Contains(t, out, sk.Name)
	}
	assert.Contains(t, out, c.Profile.GitHubURL)
	assert.Contains(t, out, model.Version)
}

func TestSectionSkillsAreGrouped(t *testing.T) {
	out := Section(model.DefaultContent(), model.Skills, 80)
	prog := strings.Index(out, "Programming")
	cloud := strings.Index(out, "Cloud & DevOps")
	python := strings.Index(out, "Python")

	assert.True(t, prog < python && python < cloud)
	assert.Contains(t, out, "Expert")
}

func TestSectionFeaturedMarker(t *testing.T) {
	out := Section(model.DefaultContent(), model.Projects, 80)
	assert.Contains(t, out, model.IconFeatured+" Python Automation Suite")
	assert.Contains(t, out, model.IconProject+" Docker Containerization")
}
