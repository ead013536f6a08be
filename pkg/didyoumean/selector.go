package didyoumean

import (
	"math"
	"sort"
	"unicode/utf8"
)

// score computes the candidate's score under the configured metric.
func (o *Options) score(input, candidate string) float64 {
	distance := o.Distance(input, candidate)
	if o.ThresholdType == EditDistance {
		return float64(distance)
	}
	return similarity(distance, input, candidate)
}

// similarity converts an edit distance into a length-normalized score in
// [0,1], where 1 is an exact match. Normalizing by the longer string makes a
// fixed threshold usable across candidates of varying length. Lengths are
// rune counts, matching the rune-edit semantics of DistanceFunc.
func similarity(distance int, a, b string) float64 {
	length := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > length {
		length = n
	}
	if length < 1 {
		length = 1
	}

	score := 1 - float64(distance)/float64(length)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// passes reports whether a score meets the configured cutoff.
func (o *Options) passes(score float64) bool {
	if o.ThresholdType == EditDistance {
		return score <= o.Threshold
	}
	return score >= o.Threshold
}

// better reports whether a is a strictly better score than b under the
// configured metric.
func (o *Options) better(a, b float64) bool {
	if o.ThresholdType == EditDistance {
		return a < b
	}
	return a > b
}

// selectIndexes scores the normalized candidate keys against the normalized
// input and returns the selected indexes per the configured return type.
// Options must already be validated.
func selectIndexes(input string, keys []string, o *Options) []int {
	switch o.ReturnType {
	case FirstMatch:
		// The only strategy allowed to stop before scoring the whole list.
		for i, key := range keys {
			if o.passes(o.score(input, key)) {
				return []int{i}
			}
		}
		return nil

	case AllMatches:
		var selected []int
		for i, key := range keys {
			if o.passes(o.score(input, key)) {
				selected = append(selected, i)
			}
		}
		return selected

	case AllSortedMatches:
		type scoredIndex struct {
			index int
			score float64
		}
		var matches []scoredIndex
		for i, key := range keys {
			score := o.score(input, key)
			if o.passes(score) {
				matches = append(matches, scoredIndex{index: i, score: score})
			}
		}

		// Best score first; the stable sort keeps equal scores in candidate
		// list order.
		sort.SliceStable(matches, func(i, j int) bool {
			return o.better(matches[i].score, matches[j].score)
		})

		selected := make([]int, len(matches))
		for i, m := range matches {
			selected[i] = m.index
		}
		return selected

	default: // FirstClosestMatch, AllClosestMatches
		return selectClosest(input, keys, o)
	}
}

// selectClosest implements the two-pass closest-match strategies. Pass 1
// scores every candidate and tracks the margin, the single best score across
// the whole list. The margin cannot be known before the last candidate is
// scored, so there is no short-circuit even for FirstClosestMatch.
func selectClosest(input string, keys []string, o *Options) []int {
	margin := math.Inf(1)
	if o.ThresholdType == Similarity {
		margin = 0
	}

	scores := make([]float64, len(keys))
	for i, key := range keys {
		scores[i] = o.score(input, key)
		if o.better(scores[i], margin) {
			margin = scores[i]
		}
	}

	// Pass 2: the margin is a statistic over the list, not a pass guarantee;
	// it still has to clear the threshold.
	var selected []int
	for i, score := range scores {
		if score == margin && o.passes(score) {
			if o.ReturnType == FirstClosestMatch {
				return []int{i}
			}
			selected = append(selected, i)
		}
	}
	return selected
}
