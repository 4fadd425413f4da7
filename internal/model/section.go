package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSection is returned when a name does not map to a Section.
var ErrUnknownSection = errors.New("unknown section")

// Section names the content panel currently on display.
type Section int

const (
	Home Section = iota
	About
	Skills
	Projects
	Contact
)

var sectionNames = [...]string{"home", "about", "skills", "projects", "contact"}

// Sections returns every section in navigation order.
func Sections() []Section {
	return []Section{Home, About, Skills, Projects, Contact}
}

func (s Section) String() string {
	if s < Home || s > Contact {
		return fmt.Sprintf("section(%d)", int(s))
	}
	return sectionNames[s]
}

// Title is the label shown in navigation bars.
func (s Section) Title() string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Next returns the section after s, wrapping around.
func (s Section) Next() Section {
	return Section((int(s) + 1) % len(sectionNames))
}

// Prev returns the section before s, wrapping around.
func (s Section) Prev() Section {
	return Section((int(s) + len(sectionNames) - 1) % len(sectionNames))
}

// ParseSection maps a name (case-insensitive) to its Section.
// "hero" is accepted as an alias for home.
func ParseSection(name string) (Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "hero" {
		return Home, nil
	}
	for i, n := range sectionNames {
		if n == name {
			return Section(i), nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

func (s Section) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Section) UnmarshalText(text []byte) error {
	parsed, err := ParseSection(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
