package didyoumean

import (
	"reflect"
	"testing"

	"github.com/claylevering/didyoumean2/pkg/testutil"
)

// optionsFromFixture converts a fixture's options object into Option setters.
func optionsFromFixture(t *testing.T, raw map[string]interface{}) []Option {
	t.Helper()

	var opts []Option
	if v, ok := raw["threshold_type"].(string); ok {
		switch v {
		case "similarity":
			opts = append(opts, WithThresholdType(Similarity))
		case "edit-distance":
			opts = append(opts, WithThresholdType(EditDistance))
		default:
			t.Fatalf("Unknown threshold type %q", v)
		}
	}
	if v, ok := raw["threshold"].(float64); ok {
		opts = append(opts, WithThreshold(v))
	}
	if v, ok := raw["return_type"].(string); ok {
		switch v {
		case "first-closest-match":
			opts = append(opts, WithReturnType(FirstClosestMatch))
		case "first-match":
			opts = append(opts, WithReturnType(FirstMatch))
		case "all-closest-matches":
			opts = append(opts, WithReturnType(AllClosestMatches))
		case "all-matches":
			opts = append(opts, WithReturnType(AllMatches))
		case "all-sorted-matches":
			opts = append(opts, WithReturnType(AllSortedMatches))
		default:
			t.Fatalf("Unknown return type %q", v)
		}
	}
	if v, ok := raw["case_sensitive"].(bool); ok {
		opts = append(opts, WithCaseSensitive(v))
	}
	if v, ok := raw["deburr"].(bool); ok {
		opts = append(opts, WithDeburr(v))
	}
	if v, ok := raw["trim_spaces"].(bool); ok {
		opts = append(opts, WithTrimSpaces(v))
	}
	return opts
}

// matchFixture unpacks a matching test case into its call arguments.
func matchFixture(t *testing.T, tc testutil.TestCase) (string, []string, []Option) {
	t.Helper()

	input, ok := tc.InputMap()
	if !ok {
		t.Fatalf("Invalid input format")
	}

	term, _ := input["input"].(string)
	candidatesRaw, _ := input["candidates"].([]interface{})
	candidates := make([]string, len(candidatesRaw))
	for i, c := range candidatesRaw {
		candidates[i], _ = c.(string)
	}

	var opts []Option
	if rawOpts, ok := input["options"].(map[string]interface{}); ok {
		opts = optionsFromFixture(t, rawOpts)
	}
	return term, candidates, opts
}

func TestMatch(t *testing.T) {
	loader, err := testutil.NewLoaderFromRepo()
	if err != nil {
		t.Fatalf("Failed to create test data loader: %v", err)
	}

	testCases, err := loader.GetTestCases("matching", "match")
	if err != nil {
		t.Fatalf("Failed to load test cases: %v", err)
	}

	for _, tc := range testCases {
		t.Run(tc.ID, func(t *testing.T) {
			term, candidates, opts := matchFixture(t, tc)

			result, found, err := Match(term, candidates, opts...)
			if err != nil {
				t.Fatalf("Match(%q) failed: %v", term, err)
			}

			if tc.IsExpectedNull() {
				if found {
					t.Errorf("Match(%q) = %q, expected no match", term, result)
				}
				return
			}

			expected, _ := tc.ExpectedString()
			if !found {
				t.Errorf("Match(%q) found no match, expected %q", term, expected)
			} else if result != expected {
				t.Errorf("Match(%q) = %q, expected %q", term, result, expected)
			}
		})
	}
}

func TestMatchAll(t *testing.T) {
	loader, err := testutil.NewLoaderFromRepo()
	if err != nil {
		t.Fatalf("Failed to create test data loader: %v", err)
	}

	testCases, err := loader.GetTestCases("matching", "match_all")
	if err != nil {
		t.Fatalf("Failed to load test cases: %v", err)
	}

	for _, tc := range testCases {
		t.Run(tc.ID, func(t *testing.T) {
			term, candidates, opts := matchFixture(t, tc)

			expected, ok := tc.ExpectedStringSlice()
			if !ok {
				t.Fatalf("Invalid expected format")
			}

			result, err := MatchAll(term, candidates, opts...)
			if err != nil {
				t.Fatalf("MatchAll(%q) failed: %v", term, err)
			}

			if result == nil {
				t.Fatalf("MatchAll(%q) = nil, expected an empty sequence at minimum", term)
			}
			if !reflect.DeepEqual(result, expected) {
				t.Errorf("MatchAll(%q) = %v, expected %v", term, result, expected)
			}
		})
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	input := "progarm"
	candidates := []string{"program", "pogrom", "programs", "prom"}

	first, err := MatchAll(input, candidates, WithReturnType(AllSortedMatches))
	if err != nil {
		t.Fatalf("MatchAll failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := MatchAll(input, candidates, WithReturnType(AllSortedMatches))
		if err != nil {
			t.Fatalf("MatchAll failed: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("MatchAll is not deterministic: %v then %v", first, again)
		}
	}
}
