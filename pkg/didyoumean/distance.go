package didyoumean

import (
	"github.com/adrg/strutil/metrics"
	agext "github.com/agext/levenshtein"
)

// DistanceFunc computes the edit distance between two normalized strings. It
// must satisfy standard Levenshtein semantics: a non-negative count of
// single-rune insertions, deletions and substitutions, with 0 meaning the
// strings are equal.
type DistanceFunc func(a, b string) int

// lev is a reusable Levenshtein metric instance. Case folding is handled by
// normalization, so the metric itself compares runes exactly.
var lev = metrics.NewLevenshtein()

// LevenshteinDistance is the default DistanceFunc.
func LevenshteinDistance(a, b string) int {
	return lev.Distance(a, b)
}

// BoundedLevenshteinDistance returns a DistanceFunc that stops computing once
// the distance is known to exceed limit; beyond that point it reports a value
// above limit rather than the exact distance. It is suited to FirstMatch and
// AllMatches scans with an edit-distance threshold of limit. The capped
// values make it unsuitable for the closest-match and sorted strategies,
// which compare scores across the whole list.
func BoundedLevenshteinDistance(limit int) DistanceFunc {
	params := agext.NewParams().MaxCost(limit + 1)
	return func(a, b string) int {
		return agext.Distance(a, b, params)
	}
}
