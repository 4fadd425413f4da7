package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}

// LoadContent reads a JSON content file and lays it over DefaultContent.
// Fields absent from the file keep their built-in values; lists present in
// the file replace the built-in lists wholesale. An empty path returns the
// defaults.
func LoadContent(path string) (Content, error) {
	content := DefaultContent()
	if path == "" {
		return content, nil
	}

	data, err := os.ReadFile(ExpandTilde(path))
	if err != nil {
		return content, fmt.Errorf("read content file: %w", err)
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return content, fmt.Errorf("parse content file %s: %w", path, err)
	}
	// Decoding into a populated slice merges element fields, so lists that
	// the file provides are dropped first.
	for key := range probe {
		switch strings.ToLower(key) {
		case "projects":
			content.Projects = nil
		case "skills":
			content.Skills = nil
		case "files":
			content.Files = nil
		}
	}
	if err := json.Unmarshal(data, &content); err != nil {
		return content, fmt.Errorf("parse content file %s: %w", path, err)
	}

	// Skills given with only a level still get a bar
	for i := range content.Skills {
		if content.Skills[i].Progress <= 0 {
			content.Skills[i].Progress = LevelProgress(content.Skills[i].Level)
		}
		if content.Skills[i].Progress > 1 {
			content.Skills[i].Progress = 1
		}
	}
	return content, nil
}
