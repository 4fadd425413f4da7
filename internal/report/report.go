// Package report renders the portfolio as plain text for --report mode.
package report

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"termfolio/internal/model"
)

// DefaultWidth is the wrap column when none is given.
const DefaultWidth = 78

// Bar draws a fixed-width text progress bar for p in [0,1].
func Bar(p float64, width int) string {
	if width < 1 {
		width = 1
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	filled := int(p*float64(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// Wrap word-wraps s to width columns.
func Wrap(s string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.WrapString(s, uint(width))
}

// Section renders one section's body.
func Section(c model.Content, s model.Section, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	p := c.Profile
	var b strings.Builder

	switch s {
	case model.Home:
		fmt.Fprintf(&b, "%s\n%s\n\n%s\n", strings.ToUpper(p.Name), p.Title, Wrap(p.Tagline, width))

	case model.About:
		for i, para := range p.About {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(Wrap(para, width) + "\n")
		}
		if len(p.Badges) > 0 {
			b.WriteString("\n" + strings.Join(p.Badges, " "+model.IconBadge+" ") + "\n")
		}

	case model.Skills:
		nameWidth := 0
		for _, sk := range c.Skills {
			if len(sk.Name) > nameWidth {
				nameWidth = len(sk.Name)
			}
		}
		for i, cat := range c.SkillCategories() {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(cat + "\n")
			for _, sk := range c.SkillsIn(cat) {
				fmt.Fprintf(&b, "  %-*s %s %s\n", nameWidth, sk.Name, Bar(sk.Progress, 20), sk.Level)
			}
		}

	case model.Projects:
		for i, pr := range c.Projects {
			if i > 0 {
				b.WriteString("\n")
			}
			icon := model.IconProject
			if pr.Featured {
				icon = model.IconFeatured
			}
			fmt.Fprintf(&b, "%s %s [%s / %s]\n", icon, pr.Name, pr.Language, pr.Category)
			b.WriteString(indent(Wrap(pr.Description, width-2), "  ") + "\n")
		}
		if p.GitHubURL != "" {
			fmt.Fprintf(&b, "\nMore on GitHub %s %s\n", model.IconLink, p.GitHubURL)
		}

	case model.Contact:
		b.WriteString(Wrap(p.Pitch, width) + "\n\n")
		if p.GitHubURL != "" {
			fmt.Fprintf(&b, "GitHub  %s\n", p.GitHubURL)
		}
		if p.Email != "" {
			fmt.Fprintf(&b, "Email   %s\n", p.Email)
		}
	}
	return b.String()
}

// Generate renders every section with headings.
func Generate(c model.Content, width int) string {
	var b strings.Builder
	for i, s := range model.Sections() {
		if i > 0 {
			b.WriteString("\n")
		}
		title := "== " + s.Title() + " =="
		b.WriteString(title + "\n\n")
		b.WriteString(Section(c, s, width))
	}
	fmt.Fprintf(&b, "\n(c) %s (%s). Generated by termfolio %s.\n", c.Profile.Name, c.Profile.Handle, model.Version)
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
