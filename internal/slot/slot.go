package slot

import (
	"fmt"
	"strings"
)

// Name identifies a layout location that can host plugin panels.
type Name string

const (
	Sidebar      Name = "sidebar"
	MobileBottom Name = "mobile-bottom"
	SearchBar    Name = "search-bar"
	Trigger      Name = "trigger"
	MainTrigger  Name = "main-trigger"
)

var allNames = []Name{Sidebar, MobileBottom, SearchBar, Trigger, MainTrigger}

// All returns every slot in layout order.
func All() []Name {
	return append([]Name(nil), allNames...)
}

// Valid reports whether n is one of the fixed slot names.
func (n Name) Valid() bool {
	for _, known := range allNames {
		if n == known {
			return true
		}
	}
	return false
}

func (n Name) String() string {
	return string(n)
}

// ParseName converts user input into a slot name.
func ParseName(raw string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(raw)))
	if !n.Valid() {
		return "", fmt.Errorf("unknown slot %q (expected one of %s)", raw, joinNames(allNames))
	}
	return n, nil
}

func joinNames(names []Name) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
