package didyoumean

import (
	"fmt"
	"math"
)

// Default thresholds per threshold type.
const (
	// DefaultSimilarityThreshold is the minimum similarity required by default.
	DefaultSimilarityThreshold = 0.4
	// DefaultEditDistanceThreshold is the maximum edit distance allowed by default.
	DefaultEditDistanceThreshold = 20
)

// Options configures a single match call. Zero-value Options are not ready to
// use; start from DefaultOptions or pass Option setters to the match functions.
type Options struct {
	// CaseSensitive disables case folding during normalization
	CaseSensitive bool
	// Deburr strips diacritical marks during normalization
	Deburr bool
	// TrimSpaces trims the ends and collapses whitespace runs during normalization
	TrimSpaces bool
	// Threshold is the cutoff for the configured ThresholdType: the maximum
	// allowed distance for EditDistance, the minimum required similarity for
	// Similarity
	Threshold float64
	// ThresholdType selects the scoring metric
	ThresholdType ThresholdType
	// ReturnType selects the result-selection strategy
	ReturnType ReturnType
	// Distance computes the edit distance between two normalized strings
	Distance DistanceFunc
}

// DefaultOptions returns the options used when no setters are passed:
// case-insensitive, deburred, trimmed, first closest match under a minimum
// similarity of DefaultSimilarityThreshold.
func DefaultOptions() Options {
	return Options{
		CaseSensitive: false,
		Deburr:        true,
		TrimSpaces:    true,
		Threshold:     DefaultSimilarityThreshold,
		ThresholdType: Similarity,
		ReturnType:    FirstClosestMatch,
		Distance:      LevenshteinDistance,
	}
}

// Option is a functional option for configuring a match call.
type Option func(*Options)

// WithCaseSensitive sets whether comparison is case sensitive.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(o *Options) {
		o.CaseSensitive = caseSensitive
	}
}

// WithDeburr sets whether diacritical marks are stripped before comparison.
func WithDeburr(deburr bool) Option {
	return func(o *Options) {
		o.Deburr = deburr
	}
}

// WithTrimSpaces sets whether whitespace is trimmed and collapsed before
// comparison.
func WithTrimSpaces(trimSpaces bool) Option {
	return func(o *Options) {
		o.TrimSpaces = trimSpaces
	}
}

// WithThresholdType selects the scoring metric and resets the threshold to
// that metric's default. Apply WithThreshold after it to override the cutoff.
func WithThresholdType(thresholdType ThresholdType) Option {
	return func(o *Options) {
		o.ThresholdType = thresholdType
		switch thresholdType {
		case Similarity:
			o.Threshold = DefaultSimilarityThreshold
		case EditDistance:
			o.Threshold = DefaultEditDistanceThreshold
		}
	}
}

// WithThreshold sets the cutoff for the configured threshold type.
func WithThreshold(threshold float64) Option {
	return func(o *Options) {
		o.Threshold = threshold
	}
}

// WithReturnType selects the result-selection strategy.
func WithReturnType(returnType ReturnType) Option {
	return func(o *Options) {
		o.ReturnType = returnType
	}
}

// WithDistance replaces the edit-distance primitive used for scoring.
func WithDistance(distance DistanceFunc) Option {
	return func(o *Options) {
		o.Distance = distance
	}
}

// Validate checks that the options describe a usable configuration.
// Out-of-range thresholds are an error, never silently clamped.
func (o *Options) Validate() error {
	if !o.ThresholdType.valid() {
		return &ConfigError{
			Field:   "thresholdType",
			Details: fmt.Sprintf("unrecognized threshold type %d", int(o.ThresholdType)),
		}
	}
	if !o.ReturnType.valid() {
		return &ConfigError{
			Field:   "returnType",
			Details: fmt.Sprintf("unrecognized return type %d", int(o.ReturnType)),
		}
	}
	if o.Distance == nil {
		return &ConfigError{Field: "distance", Details: "distance function is nil"}
	}

	switch o.ThresholdType {
	case EditDistance:
		if o.Threshold < 0 || math.IsInf(o.Threshold, 0) || math.Trunc(o.Threshold) != o.Threshold {
			return &ConfigError{
				Field:   "threshold",
				Details: fmt.Sprintf("edit-distance threshold must be a non-negative integer, got %v", o.Threshold),
			}
		}
	case Similarity:
		if math.IsNaN(o.Threshold) || o.Threshold < 0 || o.Threshold > 1 {
			return &ConfigError{
				Field:   "threshold",
				Details: fmt.Sprintf("similarity threshold must be within [0,1], got %v", o.Threshold),
			}
		}
	}

	return nil
}

// buildOptions applies the setters on top of the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
