// Package catalog holds the immutable, language-keyed product tables that
// back the suggestion engine. Tables are pure lookup data built once at
// startup; switching the active language swaps the whole table, never a
// partial blend.
package catalog

import (
	"sort"
	"strings"

	"github.com/bastiangx/shelfserve/internal/utils"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Language identifies a catalog language.
type Language int

const (
	LangEN Language = iota
	LangDE
)

// DefaultLanguage is the fallback when a language has no catalog.
const DefaultLanguage = LangEN

// ParseLanguage maps a language code to a Language.
// Unknown codes resolve to the default language, never an error.
func ParseLanguage(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "de":
		return LangDE
	case "en", "":
		return LangEN
	default:
		return DefaultLanguage
	}
}

// Code returns the language code for wire and log output.
func (l Language) Code() string {
	switch l {
	case LangDE:
		return "de"
	default:
		return "en"
	}
}

// Product is a single catalog entry. Name is unique within a language's
// catalog; Popularity is a static 1..10 weight.
type Product struct {
	Name       string
	Category   string
	Aliases    []string
	Popularity int
}

// Table is a read-only product table for one language with name, alias and
// prefix indexes. Build it once with NewTable; it is never mutated after.
type Table struct {
	lang     Language
	products []Product
	byName   map[string]int
	byAlias  map[string]int
	trie     *patricia.Trie
}

// NewTable builds the indexes for a product list.
func NewTable(lang Language, products []Product) *Table {
	t := &Table{
		lang:     lang,
		products: products,
		byName:   make(map[string]int, len(products)),
		byAlias:  make(map[string]int),
		trie:     patricia.NewTrie(),
	}
	for i, p := range products {
		key := utils.NormalizeName(p.Name)
		t.byName[key] = i
		t.trie.Insert(patricia.Prefix(key), i)
		for _, alias := range p.Aliases {
			t.byAlias[utils.NormalizeName(alias)] = i
		}
	}
	return t
}

// Language returns the table's language.
func (t *Table) Language() Language {
	return t.lang
}

// Products returns the full product list for matching passes.
func (t *Table) Products() []Product {
	return t.products
}

// Len returns the number of products in the table.
func (t *Table) Len() int {
	return len(t.products)
}

// Lookup finds a product by exact name or alias, case-insensitive.
func (t *Table) Lookup(nameOrAlias string) (Product, bool) {
	key := utils.NormalizeName(nameOrAlias)
	if i, ok := t.byName[key]; ok {
		return t.products[i], true
	}
	if i, ok := t.byAlias[key]; ok {
		return t.products[i], true
	}
	return Product{}, false
}

// Search finds products whose name starts with or contains the query,
// case-insensitive. Prefix hits come from the trie walk; containment hits
// from a linear scan over the remainder. Used as a cheap fallback path that
// does not need the fuzzy matcher.
func (t *Table) Search(query string) []Product {
	key := utils.NormalizeName(query)
	if key == "" {
		return nil
	}

	var results []Product
	seen := make(map[string]bool)

	err := t.trie.VisitSubtree(patricia.Prefix(key), func(p patricia.Prefix, item patricia.Item) error {
		if i, ok := item.(int); ok {
			results = append(results, t.products[i])
			seen[string(p)] = true
		}
		return nil
	})
	if err != nil {
		return results
	}

	for i, p := range t.products {
		name := utils.NormalizeName(p.Name)
		if seen[name] {
			continue
		}
		if strings.Contains(name, key) {
			results = append(results, t.products[i])
		}
	}
	return results
}

// Popular returns up to limit products ordered by descending static
// popularity. This backs the at-rest UI state and is deliberately separate
// from the query-driven ranking path.
func (t *Table) Popular(limit int) []Product {
	out := make([]Product, len(t.products))
	copy(out, t.products)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity > out[j].Popularity
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

var (
	enTable *Table
	deTable *Table
)

func init() {
	enTable = NewTable(LangEN, productsEN)
	deTable = NewTable(LangDE, productsDE)
}

// ForLanguage resolves the catalog table for a language.
// A language without a catalog falls back to the default language's table.
func ForLanguage(lang Language) *Table {
	switch lang {
	case LangDE:
		return deTable
	case LangEN:
		return enTable
	default:
		return enTable
	}
}
