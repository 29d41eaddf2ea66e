package suggest

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MaxDistance is the largest edit distance Closest accepts.
const MaxDistance = 2

// Closest returns the candidate word most likely meant by word, or "" when
// nothing is close enough. An exact match is not a suggestion.
func Closest(word string, candidates []string) string {
	if word == "" || len(candidates) == 0 {
		return ""
	}

	for _, c := range candidates {
		if c == word {
			return ""
		}
	}

	// A single letter is a subsequence of too many words.
	ranks := fuzzy.RankFindFold(word, candidates)
	if len(word) > 1 && len(ranks) > 0 {
		best := ranks[0]
		for _, r := range ranks[1:] {
			if r.Distance < best.Distance || (r.Distance == best.Distance && r.OriginalIndex < best.OriginalIndex) {
				best = r
			}
		}

		return best.Target
	}

	best := ""
	bestDist := MaxDistance + 1

	for _, c := range candidates {
		// Neither word may be rewritten entirely; "x" is close to everything.
		limit := min(MaxDistance, len(c)-1, len(word)-1)

		d := Levenshtein(strings.ToLower(word), strings.ToLower(c))
		if d <= limit && d < bestDist {
			best = c
			bestDist = d
		}
	}

	return best
}
