// Package didyoumean matches an input string against a list of candidates and
// returns the ones that fit best under a configurable distance or similarity
// metric. It is built for "did you mean ...?" suggestions: typo correction,
// fuzzy lookup fallback, command and flag hints.
//
// Each call is stateless and deterministic; concurrent calls are safe as long
// as the caller does not mutate the candidate list mid-call.
package didyoumean

import (
	"github.com/claylevering/didyoumean2/pkg/internal/normalization"
)

// Match returns the best candidate for input per the configured options, and
// false when nothing is selected. With a multi-result ReturnType configured
// it returns the first selected candidate.
func Match(input string, candidates []string, opts ...Option) (string, bool, error) {
	return MatchBy(input, candidates, stringKey, opts...)
}

// MatchAll returns every selected candidate for input per the configured
// options, in selection order. The result is empty, not nil, when no
// candidate is selected; with a single-result ReturnType it holds at most one
// candidate.
func MatchAll(input string, candidates []string, opts ...Option) ([]string, error) {
	return MatchAllBy(input, candidates, stringKey, opts...)
}

// MatchBy is Match over arbitrary items; key extracts the comparison string
// from each item.
func MatchBy[T any](input string, items []T, key KeyFunc[T], opts ...Option) (T, bool, error) {
	var zero T
	selected, err := matchIndexes(input, items, key, opts)
	if err != nil {
		return zero, false, err
	}
	if len(selected) == 0 {
		return zero, false, nil
	}
	return items[selected[0]], true, nil
}

// MatchAllBy is MatchAll over arbitrary items; key extracts the comparison
// string from each item.
func MatchAllBy[T any](input string, items []T, key KeyFunc[T], opts ...Option) ([]T, error) {
	selected, err := matchIndexes(input, items, key, opts)
	if err != nil {
		return nil, err
	}
	return materialize(items, selected), nil
}

// stringKey is the identity KeyFunc for plain string candidates.
func stringKey(s string) (string, error) {
	return s, nil
}

// matchIndexes runs one full matching pass: validate the options, extract and
// normalize every key, select indexes. Any error surfaces before a result
// exists, so a call either fully succeeds or fails atomically.
func matchIndexes[T any](input string, items []T, key KeyFunc[T], opts []Option) ([]int, error) {
	o := buildOptions(opts)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if key == nil {
		return nil, &ConfigError{Field: "key", Details: "key function is nil"}
	}

	foldCase := !o.CaseSensitive
	normalized := normalization.Normalize(input, foldCase, o.Deburr, o.TrimSpaces)

	keys := make([]string, len(items))
	for i, item := range items {
		k, err := key(item)
		if err != nil {
			return nil, err
		}
		keys[i] = normalization.Normalize(k, foldCase, o.Deburr, o.TrimSpaces)
	}

	return selectIndexes(normalized, keys, &o), nil
}

// materialize maps selected indexes back to the caller's items. Items are
// returned as passed in, not copies.
func materialize[T any](items []T, selected []int) []T {
	result := make([]T, len(selected))
	for i, index := range selected {
		result[i] = items[index]
	}
	return result
}
