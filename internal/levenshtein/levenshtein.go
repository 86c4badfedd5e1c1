// Package levenshtein picks "did you mean" candidates for misspelled names.
package levenshtein

import (
	"iter"
	"slices"

	"github.com/agnivade/levenshtein"
)

// ClosestStrings returns candidates having the least edit distance to a that is below minDistance, sorted.
func ClosestStrings(minDistance int, a string, candidates iter.Seq[string]) []string {
	closestStrings := []string{}
	for c := range candidates {
		levDist := levenshtein.ComputeDistance(a, c)
		switch {
		case levDist < minDistance:
			closestStrings = []string{c}
			minDistance = levDist
		case levDist == minDistance:
			closestStrings = append(closestStrings, c)
		}
	}
	slices.Sort(closestStrings)
	return closestStrings
}

// Suggestion returns " (did you mean X?)" for the closest candidates or empty string.
func Suggestion(a string, candidates iter.Seq[string]) string {
	limit := len(a)/2 + 1
	if limit > 3 {
		limit = 3
	}
	closest := ClosestStrings(limit+1, a, candidates)
	switch len(closest) {
	case 0:
		return ""
	case 1:
		return " (did you mean " + closest[0] + "?)"
	default:
		result := " (did you mean one of "
		for i, c := range closest {
			if i > 0 {
				result += ", "
			}
			result += c
		}
		return result + "?)"
	}
}
