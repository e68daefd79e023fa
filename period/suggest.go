package period

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// ClosestLabel returns the catalog label nearest to q by edit distance,
// for "did you mean" prompts when a preset search matches nothing. The
// distance is case-insensitive. An empty query returns no suggestion.
func ClosestLabel(q string) (string, int) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return "", -1
	}
	best := ""
	bestDist := -1
	for _, p := range presetOrder {
		d := levenshtein.ComputeDistance(q, strings.ToLower(p.Label))
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.Label, d
		}
	}
	return best, bestDist
}
