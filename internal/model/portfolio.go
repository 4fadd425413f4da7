package model

// Version is the application version reported by --version and the web API.
const Version = "0.3.1"

// Profile holds the personal details shown in the hero and contact panels.
type Profile struct {
	Name      string   // Display name (e.g., V Vier)
	Handle    string   // Online handle (e.g., x0VIER)
	Title     string   // One-line role description
	Tagline   string   // Short pitch shown under the title
	About     []string // Paragraphs for the about panel
	Badges    []string // Keyword badges
	GitHubURL string
	Email     string
	Pitch     string // Contact panel call to action
}

// Project is one entry of the project gallery.
type Project struct {
	ID          int
	Name        string
	Description string
	Language    string
	Category    string
	Featured    bool
}

// Skill is a single skill with its proficiency level.
type Skill struct {
	Name     string
	Category string  // Programming, Cloud & DevOps, Security & IT
	Level    string  // Expert or Advanced
	Progress float64 // 0..1, drives the progress bar
}

// Content is everything the portfolio renders. It is built once at
// startup and never mutated afterwards.
type Content struct {
	Profile  Profile
	Projects []Project
	Skills   []Skill
	Files    []string // Names printed by the terminal's ls command
}

// SkillCategories returns the distinct skill categories in first-seen order.
func (c Content) SkillCategories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range c.Skills {
		if seen[s.Category] {
			continue
		}
		seen[s.Category] = true
		out = append(out, s.Category)
	}
	return out
}

// SkillsIn returns the skills of one category, in table order.
func (c Content) SkillsIn(category string) []Skill {
	var out []Skill
	for _, s := range c.Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// FeaturedProjects returns the projects flagged as featured.
func (c Content) FeaturedProjects() []Project {
	var out []Project
	for _, p := range c.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
