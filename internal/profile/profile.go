// Package profile decodes the trainer profile document.
package profile

import (
	"encoding/json"
	"strings"

	"github.com/mmcdole/dextrack/internal/domain"
)

const (
	DefaultName  = "Local Trainer"
	DefaultTitle = "Rookie Archivist"
)

// Default returns the profile used when nothing is stored.
func Default() domain.Profile {
	return domain.Profile{Name: DefaultName, Title: DefaultTitle}
}

// Decode parses a stored profile. Fields that are missing, blank or not
// strings fall back to their defaults individually.
func Decode(data []byte) domain.Profile {
	p := Default()

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return p
	}
	if name, ok := raw["name"].(string); ok && strings.TrimSpace(name) != "" {
		p.Name = strings.TrimSpace(name)
	}
	if title, ok := raw["title"].(string); ok && strings.TrimSpace(title) != "" {
		p.Title = strings.TrimSpace(title)
	}
	return p
}

// Normalize applies the same per-field fallback to an in-memory profile.
func Normalize(p domain.Profile) domain.Profile {
	out := Default()
	if name := strings.TrimSpace(p.Name); name != "" {
		out.Name = name
	}
	if title := strings.TrimSpace(p.Title); title != "" {
		out.Title = title
	}
	return out
}

// Encode serialises a profile for storage.
func Encode(p domain.Profile) ([]byte, error) {
	return json.Marshal(Normalize(p))
}
