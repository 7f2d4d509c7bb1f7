package similarity

import "strings"

// Jaccard calculates Jaccard similarity between two strings.
// Tokenizes both strings and computes the Jaccard index (intersection/union).
func Jaccard(a, b string) float64 {
	setA := TokenSet(a)
	setB := TokenSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

// ContainsAnyWord reports whether the lower-cased text contains any
// lower-cased word of name as a substring. Catches partial mentions like
// "immune" matching "Immune Response".
func ContainsAnyWord(text, name string) bool {
	lower := strings.ToLower(text)
	for _, w := range Tokenize(name) {
		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}
