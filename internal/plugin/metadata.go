package plugin

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
)

var (
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	namePattern   = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// Metadata describes a plugin's identity and placement.
type Metadata struct {
	Name        string
	Version     string
	Description string
	Slots       []slot.Name
}

// Validate ensures metadata is well-formed.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("plugin metadata requires a non-empty Name")
	}
	if !namePattern.MatchString(m.Name) {
		return fmt.Errorf("plugin '%s' has invalid Name (expected lowercase letters, digits, '-' or '_')", m.Name)
	}
	if strings.TrimSpace(m.Version) == "" {
		return fmt.Errorf("plugin '%s' metadata requires Version", m.Name)
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("plugin '%s' has invalid Version '%s' (expected format: X.Y.Z)", m.Name, m.Version)
	}
	if len(m.Slots) == 0 {
		return fmt.Errorf("plugin '%s' must declare at least one slot", m.Name)
	}

	seen := map[slot.Name]struct{}{}
	for _, s := range m.Slots {
		if !s.Valid() {
			return fmt.Errorf("plugin '%s' declares unknown slot '%s'", m.Name, s)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("plugin '%s' lists slot '%s' more than once", m.Name, s)
		}
		seen[s] = struct{}{}
	}

	return nil
}

// Supports reports whether the plugin may be placed in s.
func (m Metadata) Supports(s slot.Name) bool {
	for _, candidate := range m.Slots {
		if candidate == s {
			return true
		}
	}
	return false
}
