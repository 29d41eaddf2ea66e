package suggest

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"by", "by", 0},

		// Empty vs non-empty
		{"", "pat", 3},
		{"mut", "", 3},

		// Single character operations
		{"pt", "pat", 1},  // insertion
		{"bye", "by", 1},  // deletion
		{"mot", "mut", 1}, // substitution

		// Multiple operations
		{"kitten", "sitting", 3},
		{"noinline", "inline", 2},

		// Case-sensitive
		{"BY", "by", 2},
		{"Pat", "pat", 1},

		// Option names
		{"recv", "ref", 2},
		{"shorthnad", "shorthand", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}
