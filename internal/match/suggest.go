package match

import "sort"

// DefaultThreshold is the minimum similarity for a key to be suggested.
const DefaultThreshold = 0.75

// maxSuggestions caps how many keys Suggest returns.
const maxSuggestions = 3

// Suggest ranks keys by their similarity to name and returns the ones at or
// above threshold, best first. An exact key match is never suggested: the
// field would not be missing.
func Suggest(name string, keys []string, threshold float64) []string {
	target := NormalizeIdent(name)

	type scored struct {
		key   string
		score float64
	}

	var candidates []scored

	for _, k := range keys {
		if k == name {
			continue
		}

		score := Similarity(target, NormalizeIdent(k))
		if score >= threshold {
			candidates = append(candidates, scored{key: k, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.key)
	}

	return out
}
