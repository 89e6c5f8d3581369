package suite

import (
	"path/filepath"
	"strings"

	"gramcheck/internal/domain"
)

// Filter filters cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters cases by name pattern using wildcard matching
// Supports patterns like "*comment*" or "block*"
func (f *Filter) FilterByName(cases []domain.Case, pattern string) []domain.Case {
	if pattern == "" {
		return cases
	}

	var filtered []domain.Case

	for _, c := range cases {
		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, c.Name)
		if err == nil && matched {
			filtered = append(filtered, c)
			continue
		}

		// If the pattern contains wildcards but filepath.Match didn't match,
		// fall back to matching the non-wildcard parts as substrings
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allPartsMatch := true
			hasNonEmptyPart := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmptyPart = true
				if !strings.Contains(c.Name, part) {
					allPartsMatch = false
					break
				}
			}
			if allPartsMatch && hasNonEmptyPart {
				filtered = append(filtered, c)
			}
			continue
		}

		// No wildcards: simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(c.Name, pattern) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
