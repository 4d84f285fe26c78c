// Package match ranks near-miss names for "did you mean" suggestions in
// lookup errors.
package match

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions or substitutions turning
// one into the other. Runs in O(len(a)*len(b)) time and O(min) space.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// Keep a as the shorter string so the rows stay small.
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity normalizes the distance into a score between 0 and 1, where
// 1 means identical.
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(len(a), len(b)))
}

// Closest returns the candidate most similar to name, provided the score
// reaches threshold. It returns "" when no candidate qualifies.
func Closest(name string, candidates []string, threshold float64) string {
	best, bestScore := "", threshold

	for _, c := range candidates {
		if score := Similarity(name, c); score >= bestScore {
			best, bestScore = c, score
		}
	}

	return best
}
