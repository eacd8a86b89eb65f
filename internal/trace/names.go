package trace

import (
	"fmt"
	"strings"
)

// nameOf returns names[v], or "unknown" for values outside the table.
func nameOf[T ~uint8](names []string, v T) string {
	if int(v) < len(names) && names[v] != "" {
		return names[v]
	}
	return "unknown"
}

// parseName looks s up in names, ignoring case. On failure it returns
// fallback and an error listing the accepted spellings.
func parseName[T ~uint8](what, s string, names []string, fallback T) (T, error) {
	want := strings.ToLower(s)
	var valid []string
	for i, n := range names {
		if n == "" {
			continue
		}
		if n == want {
			return T(i), nil
		}
		valid = append(valid, n)
	}
	return fallback, fmt.Errorf("invalid %s: %q (expected: %s)", what, s, strings.Join(valid, "|"))
}
