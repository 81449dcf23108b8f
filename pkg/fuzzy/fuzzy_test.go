package fuzzy

import (
	"testing"

	"github.com/bastiangx/shelfserve/pkg/catalog"
)

// Tests the matcher against our expected acceptance behavior.
//
// IMPORTANT to know:
// preference: `exact match > partial/prefix input > small typos`,
// anything past the distance threshold is dropped entirely.
func TestMatcherAcceptance(t *testing.T) {
	products := []catalog.Product{
		{Name: "milk", Category: "dairy", Aliases: []string{"whole milk"}, Popularity: 10},
		{Name: "bananas", Category: "produce", Aliases: []string{"banana"}, Popularity: 10},
		{Name: "bread", Category: "bakery", Popularity: 10},
		{Name: "oat milk", Category: "dairy", Popularity: 5},
		{Name: "chocolate", Category: "snacks", Popularity: 7},
	}
	matcher := NewMatcher(Options{})

	testCases := []struct {
		query       string
		expectHit   string
		description string
	}{
		// exact matches
		{"milk", "milk", "Exact match"},
		{"bread", "bread", "Exact match"},

		// case and whitespace insensitive
		{"Milk", "milk", "Case insensitive match"},
		{"  BREAD  ", "bread", "Uppercase with padding"},

		// partial input
		{"mil", "milk", "Partial prefix input"},
		{"banan", "bananas", "Partial prefix input"},
		{"oat", "oat milk", "Prefix of a two-word name"},
		{"choc", "chocolate", "Short prefix of long name"},

		// small typos
		{"milkk", "milk", "Extra character at end"},
		{"mlk", "milk", "Missing character in middle"},
		{"bananna", "bananas", "Doubled character"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			matches, err := matcher.Match(tc.query, products)
			if err != nil {
				t.Fatalf("Match(%q) returned error: %v", tc.query, err)
			}
			if !containsProduct(matches, tc.expectHit) {
				t.Errorf("Match(%q) = %v, expected to contain %q", tc.query, matchNames(matches), tc.expectHit)
			}
		})
	}
}

func TestMatcherRejection(t *testing.T) {
	products := []catalog.Product{
		{Name: "milk", Category: "dairy", Popularity: 10},
		{Name: "bread", Category: "bakery", Popularity: 10},
	}
	matcher := NewMatcher(Options{})

	testCases := []struct {
		query       string
		reject      string
		description string
	}{
		{"zzzz", "milk", "Unrelated query"},
		{"mikl", "milk", "Transposition is two edits, past threshold"},
		{"bread", "milk", "Exact match on another product"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			matches, err := matcher.Match(tc.query, products)
			if err != nil {
				t.Fatalf("Match(%q) returned error: %v", tc.query, err)
			}
			if containsProduct(matches, tc.reject) {
				t.Errorf("Match(%q) should not contain %q, got %v", tc.query, tc.reject, matchNames(matches))
			}
		})
	}
}

func TestMatcherExactDistanceIsZero(t *testing.T) {
	products := []catalog.Product{
		{Name: "milk", Category: "dairy", Aliases: []string{"whole milk", "cow milk"}, Popularity: 10},
	}
	matcher := NewMatcher(Options{})

	matches, err := matcher.Match("milk", products)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected a single match, got %v", matchNames(matches))
	}
	if matches[0].Distance != 0 {
		t.Errorf("exact match distance = %v, want 0", matches[0].Distance)
	}
}

func TestMatcherAliasCannotWorsenNameMatch(t *testing.T) {
	withAliases := []catalog.Product{
		{Name: "milk", Category: "dairy", Aliases: []string{"entirely unrelated"}, Popularity: 10},
	}
	without := []catalog.Product{
		{Name: "milk", Category: "dairy", Popularity: 10},
	}
	matcher := NewMatcher(Options{})

	a, err := matcher.Match("mil", withAliases)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	b, err := matcher.Match("mil", without)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("expected one match each, got %d and %d", len(a), len(b))
	}
	if a[0].Distance > b[0].Distance {
		t.Errorf("alias presence worsened distance: %v > %v", a[0].Distance, b[0].Distance)
	}
}

func TestMatcherAliasRecall(t *testing.T) {
	products := []catalog.Product{
		{Name: "chips", Category: "snacks", Aliases: []string{"crisps"}, Popularity: 7},
	}
	matcher := NewMatcher(Options{})

	matches, err := matcher.Match("crisps", products)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if !containsProduct(matches, "chips") {
		t.Errorf("alias query should recall the product, got %v", matchNames(matches))
	}
}

func TestMatcherInvalidInput(t *testing.T) {
	matcher := NewMatcher(Options{})
	products := []catalog.Product{{Name: "milk", Category: "dairy"}}

	matches, err := matcher.Match(string([]byte{0xff, 0xfe}), products)
	if err != ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected empty match set, got %v", matchNames(matches))
	}
}

func TestMatcherEmptyQuery(t *testing.T) {
	matcher := NewMatcher(Options{})
	products := []catalog.Product{{Name: "milk", Category: "dairy"}}

	matches, err := matcher.Match("   ", products)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("whitespace query should match nothing, got %v", matchNames(matches))
	}
}

// Oversized input is truncated, not rejected.
func TestMatcherTruncatesLongQueries(t *testing.T) {
	matcher := NewMatcher(Options{MaxQueryLen: 8})
	products := []catalog.Product{{Name: "milk", Category: "dairy"}}

	long := "milk"
	for len(long) < 200 {
		long += "x"
	}
	_, err := matcher.Match(long, products)
	if err != nil {
		t.Errorf("long query should be truncated, not rejected: %v", err)
	}
}

func containsProduct(matches []Match, name string) bool {
	for _, m := range matches {
		if m.Product.Name == name {
			return true
		}
	}
	return false
}

func matchNames(matches []Match) []string {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Product.Name
	}
	return names
}
