package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconPrompt   = "$" // Shell prompt
	IconFeatured = "★" // Featured project
	IconProject  = "▸" // Regular project
	IconBadge    = "•" // Badge separator
	IconLink     = "→" // External link
	IconError    = "✗" // Unrecognized command
)

// SectionIcon returns the glyph shown next to a section in the nav bar.
func SectionIcon(s Section) string {
	switch s {
	case Home:
		return "⌂"
	case About:
		return "@"
	case Skills:
		return "▰"
	case Projects:
		return "◆"
	case Contact:
		return "✉"
	}
	return " "
}
