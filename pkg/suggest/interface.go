// Package suggest is the core, merging catalog, learned-product and usage
// history candidates into one ranked, deduplicated suggestion list.
package suggest

import (
	"github.com/bastiangx/shelfserve/pkg/catalog"
	"github.com/bastiangx/shelfserve/pkg/history"
)

// Suggester defines the surface the UI layer consumes.
type Suggester interface {
	// Suggestions returns ranked suggestions for a query, capped at the
	// configured maximum. Empty input returns nil.
	Suggestions(input string, lang catalog.Language) []Suggestion

	// Learn records an accepted or free-typed item in the usage history.
	Learn(name string, lang catalog.Language)

	// Popular returns the catalog's most popular products for the at-rest
	// state. Separate from the query-driven ranking path.
	Popular(lang catalog.Language, limit int) []Suggestion

	// Learned-product surface.
	AddProduct(name, category string)
	FindProduct(name string) (history.LearnedProduct, bool)
	IncrementUsage(name string)

	// History maintenance surface.
	ExportHistory() map[string]history.Entry
	ImportHistory(table map[string]history.Entry)
	CleanupHistory() int

	// Stats returns counters about the engine's stores.
	Stats() map[string]int
}
