package catalog

import "testing"

func TestParseLanguage(t *testing.T) {
	testCases := []struct {
		code        string
		want        Language
		description string
	}{
		{code: "en", want: LangEN, description: "english code"},
		{code: "de", want: LangDE, description: "german code"},
		{code: "EN", want: LangEN, description: "uppercase code"},
		{code: " de ", want: LangDE, description: "padded code"},
		{code: "", want: LangEN, description: "empty code falls back"},
		{code: "fr", want: DefaultLanguage, description: "unknown code falls back"},
		{code: "klingon", want: DefaultLanguage, description: "nonsense code falls back"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := ParseLanguage(tc.code); got != tc.want {
				t.Errorf("ParseLanguage(%q) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestLanguageCode(t *testing.T) {
	if LangEN.Code() != "en" {
		t.Errorf("LangEN.Code() = %q", LangEN.Code())
	}
	if LangDE.Code() != "de" {
		t.Errorf("LangDE.Code() = %q", LangDE.Code())
	}
}

func TestLookup(t *testing.T) {
	table := ForLanguage(LangEN)

	testCases := []struct {
		query       string
		wantName    string
		wantFound   bool
		description string
	}{
		{query: "milk", wantName: "milk", wantFound: true, description: "exact name"},
		{query: "MILK", wantName: "milk", wantFound: true, description: "case-insensitive name"},
		{query: "  milk  ", wantName: "milk", wantFound: true, description: "padded name"},
		{query: "whole milk", wantName: "milk", wantFound: true, description: "alias resolves to product"},
		{query: "crisps", wantName: "chips", wantFound: true, description: "alias with different name"},
		{query: "dragon fruit", wantFound: false, description: "unknown product"},
		{query: "", wantFound: false, description: "empty query"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			p, found := table.Lookup(tc.query)
			if found != tc.wantFound {
				t.Fatalf("Lookup(%q) found = %v, want %v", tc.query, found, tc.wantFound)
			}
			if found && p.Name != tc.wantName {
				t.Errorf("Lookup(%q) = %q, want %q", tc.query, p.Name, tc.wantName)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	table := ForLanguage(LangEN)

	t.Run("prefix hits", func(t *testing.T) {
		got := table.Search("oat")
		if !containsName(got, "oats") || !containsName(got, "oat milk") {
			t.Errorf("Search(\"oat\") = %v, want oats and oat milk", names(got))
		}
	})

	t.Run("containment hits", func(t *testing.T) {
		got := table.Search("milk")
		if !containsName(got, "milk") || !containsName(got, "oat milk") || !containsName(got, "soy milk") {
			t.Errorf("Search(\"milk\") = %v, want milk, oat milk and soy milk", names(got))
		}
	})

	t.Run("no duplicates between passes", func(t *testing.T) {
		got := table.Search("oat")
		seen := make(map[string]bool)
		for _, p := range got {
			if seen[p.Name] {
				t.Errorf("Search(\"oat\") returned %q twice", p.Name)
			}
			seen[p.Name] = true
		}
	})

	t.Run("empty query", func(t *testing.T) {
		if got := table.Search(""); got != nil {
			t.Errorf("Search(\"\") = %v, want nil", names(got))
		}
	})

	t.Run("no hits", func(t *testing.T) {
		if got := table.Search("zzzz"); len(got) != 0 {
			t.Errorf("Search(\"zzzz\") = %v, want empty", names(got))
		}
	})
}

func TestPopularOrderAndLimit(t *testing.T) {
	table := ForLanguage(LangEN)

	got := table.Popular(5)
	if len(got) != 5 {
		t.Fatalf("Popular(5) returned %d products", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Popularity > got[i-1].Popularity {
			t.Errorf("Popular not descending at %d: %d after %d", i, got[i].Popularity, got[i-1].Popularity)
		}
	}

	all := table.Popular(0)
	if len(all) != table.Len() {
		t.Errorf("Popular(0) returned %d of %d products", len(all), table.Len())
	}
}

// Popular must never reorder the table itself.
func TestPopularDoesNotMutateTable(t *testing.T) {
	table := NewTable(LangEN, []Product{
		{Name: "a", Popularity: 1},
		{Name: "b", Popularity: 9},
		{Name: "c", Popularity: 5},
	})
	table.Popular(0)
	if table.Products()[0].Name != "a" {
		t.Errorf("Popular mutated the backing product list")
	}
}

func TestForLanguage(t *testing.T) {
	if ForLanguage(LangDE).Language() != LangDE {
		t.Error("ForLanguage(LangDE) returned the wrong table")
	}
	if _, found := ForLanguage(LangDE).Lookup("milch"); !found {
		t.Error("german table is missing milch")
	}
	if ForLanguage(Language(99)).Language() != DefaultLanguage {
		t.Error("unmapped language must fall back to the default table")
	}
}

func containsName(products []Product, name string) bool {
	for _, p := range products {
		if p.Name == name {
			return true
		}
	}
	return false
}

func names(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}
