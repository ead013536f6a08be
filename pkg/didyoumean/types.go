package didyoumean

import "strings"

// ThresholdType selects the metric used to score candidates and to interpret
// the configured threshold.
type ThresholdType int

const (
	// Similarity scores candidates with the length-normalized complement of
	// the edit distance, in [0,1] where 1 is an exact match. The threshold is
	// the minimum required similarity.
	Similarity ThresholdType = iota
	// EditDistance scores candidates with the raw edit distance. The
	// threshold is the maximum allowed distance.
	EditDistance
)

// String returns the human-readable name of the threshold type.
func (t ThresholdType) String() string {
	switch t {
	case Similarity:
		return "similarity"
	case EditDistance:
		return "edit-distance"
	default:
		return "unknown"
	}
}

func (t ThresholdType) valid() bool {
	return t == Similarity || t == EditDistance
}

// ReturnType selects how passing candidates are turned into a result set.
type ReturnType int

const (
	// FirstClosestMatch selects the first candidate tied for the best score
	// across the whole list, provided that score passes the threshold.
	FirstClosestMatch ReturnType = iota
	// FirstMatch selects the first candidate that passes the threshold and
	// stops scanning as soon as one is found.
	FirstMatch
	// AllClosestMatches selects every candidate tied for the best score
	// across the whole list, provided that score passes the threshold.
	AllClosestMatches
	// AllMatches selects every candidate that passes the threshold, in
	// candidate list order.
	AllMatches
	// AllSortedMatches selects every candidate that passes the threshold,
	// best score first; equal scores keep their original relative order.
	AllSortedMatches
)

// String returns the human-readable name of the return type.
func (r ReturnType) String() string {
	switch r {
	case FirstClosestMatch:
		return "first-closest-match"
	case FirstMatch:
		return "first-match"
	case AllClosestMatches:
		return "all-closest-matches"
	case AllMatches:
		return "all-matches"
	case AllSortedMatches:
		return "all-sorted-matches"
	default:
		return "unknown"
	}
}

func (r ReturnType) valid() bool {
	return r >= FirstClosestMatch && r <= AllSortedMatches
}

// KeyFunc extracts the comparison key from a candidate item. It runs before
// normalization. Returning an error aborts the whole match call with no
// partial result.
type KeyFunc[T any] func(item T) (string, error)

// PathKey returns a KeyFunc that walks nested map[string]any values along
// path and returns the string leaf at the end. A missing field, a non-object
// intermediate value or a non-string leaf is a configuration error.
func PathKey(path ...string) KeyFunc[map[string]any] {
	return func(item map[string]any) (string, error) {
		if len(path) == 0 {
			return "", &KeyError{Details: "empty key path"}
		}

		var current any = item
		for i, field := range path {
			object, ok := current.(map[string]any)
			if !ok {
				return "", &KeyError{
					Path:    strings.Join(path[:i], "."),
					Details: "value is not an object",
				}
			}
			current, ok = object[field]
			if !ok {
				return "", &KeyError{
					Path:    strings.Join(path[:i+1], "."),
					Details: "field not found",
				}
			}
		}

		key, ok := current.(string)
		if !ok {
			return "", &KeyError{
				Path:    strings.Join(path, "."),
				Details: "field is not a string",
			}
		}
		return key, nil
	}
}
