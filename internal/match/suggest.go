package match

import "strings"

// MinSuggestScore is the similarity below which no suggestion is offered.
const MinSuggestScore = 0.5

// Closest returns the candidate most similar to name, compared
// case-insensitively. Ties keep the earliest candidate. ok is false when
// no candidate reaches MinSuggestScore.
func Closest(name string, candidates []string) (best string, ok bool) {
	want := strings.ToLower(name)
	bestScore := MinSuggestScore

	for _, c := range candidates {
		score := Similarity(want, strings.ToLower(c))
		if score > bestScore || (!ok && score == bestScore) {
			best, bestScore, ok = c, score, true
		}
	}

	return best, ok
}
