// Package fuzz implements the string similarity scores used to rank workspaces.
//
// Scores are on a 0-100 scale and are computed over runes. Comparison is
// case-sensitive: callers that want case folding must fold both inputs.
package fuzz

import "math"

// Ratio returns the indel similarity of a and b: 100 * (1 - dist/(len(a)+len(b)))
// where dist counts insertions and deletions only. Two empty strings are identical.
func Ratio(a, b string) float64 {
	return similarity([]rune(a), []rune(b)) * 100
}

// PartialRatio scores how well the shorter string matches the best aligned
// window of the longer one, rounded half to even.
//
// Candidate windows are every full-length window of the longer string plus
// the shorter prefixes and suffixes hanging off its edges. Windows whose
// boundary rune does not occur in the shorter string are skipped: shifting
// such a window never loses a match.
func PartialRatio(a, b string) int {
	s1, s2 := []rune(a), []rune(b)
	if len(s1) == 0 && len(s2) == 0 {
		return 100
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0
	}

	shorter, longer := s1, s2
	if len(s1) > len(s2) {
		shorter, longer = s2, s1
	}

	best := bestWindow(shorter, longer)
	if best < 1 && len(s1) == len(s2) {
		best = math.Max(best, bestWindow(longer, shorter))
	}
	return percent(best)
}

// bestWindow returns the highest similarity between s1 and a window of s2.
// len(s1) must not exceed len(s2).
func bestWindow(s1, s2 []rune) float64 {
	len1, len2 := len(s1), len(s2)

	present := make(map[rune]struct{}, len1)
	for _, r := range s1 {
		present[r] = struct{}{}
	}
	has := func(r rune) bool {
		_, ok := present[r]
		return ok
	}

	best := 0.0
	// try reports whether a perfect window was found.
	try := func(window []rune) bool {
		if sim := similarity(s1, window); sim > best {
			best = sim
		}
		return best == 1
	}

	// Windows entering from the left edge.
	for i := 1; i < len1; i++ {
		if has(s2[i-1]) && try(s2[:i]) {
			return 1
		}
	}

	// Full windows.
	for i := 0; i < len2-len1; i++ {
		if has(s2[i+len1-1]) && try(s2[i:i+len1]) {
			return 1
		}
	}

	// Last full window, then windows leaving through the right edge.
	for i := len2 - len1; i < len2; i++ {
		if has(s2[i]) && try(s2[i:]) {
			return 1
		}
	}

	return best
}

// similarity is the normalized indel similarity in [0, 1].
func similarity(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	dist := total - 2*lcs(a, b)
	return 1 - float64(dist)/float64(total)
}

// lcs returns the length of the longest common subsequence of a and b.
func lcs(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func percent(sim float64) int {
	return int(math.RoundToEven(sim * 100))
}
