package match

import (
	"slices"
)

// DefaultSuggestThreshold is the minimum similarity a candidate needs to be
// offered as a correction.
const DefaultSuggestThreshold = 0.6

// Lookup finds the candidate equal to s after normalization.
func Lookup(s string, candidates []string) (string, bool) {
	norm := NormalizeIdent(s)
	for _, c := range candidates {
		if NormalizeIdent(c) == norm {
			return c, true
		}
	}

	return "", false
}

// Suggest returns up to limit candidates whose similarity to s reaches
// threshold, best first. Ties keep the candidates' original order.
func Suggest(s string, candidates []string, threshold float64, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var hits []scored

	for _, c := range candidates {
		if score := Similarity(s, c); score >= threshold {
			hits = append(hits, scored{name: c, score: score})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}

	return out
}
