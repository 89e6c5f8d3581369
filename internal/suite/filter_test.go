package suite

import (
	"testing"

	"gramcheck/internal/domain"
)

func namedCases(names ...string) []domain.Case {
	cases := make([]domain.Case, 0, len(names))
	for _, n := range names {
		cases = append(cases, domain.Case{Name: n, Source: "# x\n", Expect: []string{"line_comment"}})
	}
	return cases
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		cases    []domain.Case
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			cases:    namedCases("line comment", "block comment", "inline block comment"),
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard prefix",
			cases:    namedCases("line comment", "block comment", "inline block comment"),
			pattern:  "block*",
			expected: 1,
		},
		{
			name:     "wildcard substring",
			cases:    namedCases("line comment", "block comment", "inline block comment"),
			pattern:  "*block*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			cases:    namedCases("line comment", "block comment", "inline block comment"),
			pattern:  "line",
			expected: 2,
		},
		{
			name:     "no matches",
			cases:    namedCases("line comment", "block comment"),
			pattern:  "*string*",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.cases, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EmptyInput(t *testing.T) {
	filter := NewFilter()
	result := filter.FilterByName(nil, "*comment*")
	if len(result) != 0 {
		t.Errorf("expected empty result, got %d items", len(result))
	}
}
