package suggest

import (
	"github.com/bastiangx/shelfserve/internal/utils"
	"github.com/bastiangx/shelfserve/pkg/catalog"
	"github.com/bastiangx/shelfserve/pkg/fuzzy"
	"github.com/bastiangx/shelfserve/pkg/history"
	"github.com/charmbracelet/log"
)

// Reason tags where a suggestion came from.
type Reason string

const (
	ReasonFuzzy      Reason = "fuzzy"
	ReasonHistory    Reason = "history"
	ReasonPopularity Reason = "popularity"
)

// Suggestion is one ranked result. Score is a relative ranking signal, not
// a probability: history scores are weighted past 1.0 on purpose.
type Suggestion struct {
	Name     string
	Category string
	Score    float64
	Reason   Reason
	Aliases  []string
}

// Options tunes an Engine. Zero values fall back to the defaults.
type Options struct {
	MaxSuggestions   int
	FallbackCategory string // category for items unknown to any store
	MaxAgeDays       int    // history cleanup age threshold
	MinCountToKeep   int    // history cleanup count threshold
}

// Engine orchestrates the three candidate sources and the global ranking.
// One engine serves one user session; it holds no locks because there is a
// single mutator path and no concurrent writers (hosts that share an
// engine across requests must add their own mutual exclusion).
type Engine struct {
	matcher          *fuzzy.Matcher
	history          *history.Store
	learned          *history.LearnedStore
	maxSuggestions   int
	fallbackCategory string
	maxAgeDays       int
	minCountToKeep   int
}

// NewEngine wires a matcher and the two user-owned stores into an engine.
func NewEngine(matcher *fuzzy.Matcher, hist *history.Store, learned *history.LearnedStore, opts Options) *Engine {
	e := &Engine{
		matcher:          matcher,
		history:          hist,
		learned:          learned,
		maxSuggestions:   opts.MaxSuggestions,
		fallbackCategory: opts.FallbackCategory,
		maxAgeDays:       opts.MaxAgeDays,
		minCountToKeep:   opts.MinCountToKeep,
	}
	if e.maxSuggestions <= 0 {
		e.maxSuggestions = 6
	}
	if e.fallbackCategory == "" {
		e.fallbackCategory = "other"
	}
	if e.maxAgeDays <= 0 {
		e.maxAgeDays = 180
	}
	if e.minCountToKeep <= 0 {
		e.minCountToKeep = 3
	}
	return e
}

// Suggestions gathers candidates from the learned products, the catalog via
// the fuzzy matcher, and the usage history, then applies the tiered
// comparator, deduplicates by normalized name keeping the higher score, and
// truncates. Empty input returns nil; callers wanting an at-rest list use
// Popular instead.
func (e *Engine) Suggestions(input string, lang catalog.Language) []Suggestion {
	query := utils.NormalizeName(input)
	if query == "" {
		return nil
	}
	table := catalog.ForLanguage(lang)

	var candidates []Suggestion

	for _, c := range e.learned.Match(query) {
		candidates = append(candidates, Suggestion{
			Name:     c.Name,
			Category: c.Category,
			Score:    c.Score,
			Reason:   ReasonHistory,
		})
	}

	matches, err := e.matcher.Match(query, table.Products())
	if err != nil {
		// Programmer error in the query bytes; the match set stays empty.
		log.Debugf("suggest: fuzzy match rejected input: %v", err)
	}
	for _, m := range matches {
		candidates = append(candidates, Suggestion{
			Name:     m.Product.Name,
			Category: m.Product.Category,
			Score:    1 - m.Distance,
			Reason:   ReasonFuzzy,
			Aliases:  m.Product.Aliases,
		})
	}

	for _, c := range e.history.Match(query) {
		candidates = append(candidates, Suggestion{
			Name:     c.Name,
			Category: c.Category,
			Score:    c.Score,
			Reason:   ReasonHistory,
		})
	}

	candidates = dedupe(candidates)
	rank(candidates, query)

	if len(candidates) > e.maxSuggestions {
		candidates = candidates[:e.maxSuggestions]
	}
	return candidates
}

// Learn is the write path for an accepted suggestion or a free-typed item.
// The category resolves learned store first, then catalog, then the
// fallback category. Known learned products also get their usage bumped.
func (e *Engine) Learn(name string, lang catalog.Language) {
	if utils.NormalizeName(name) == "" {
		return
	}

	category := e.fallbackCategory
	if learned, ok := e.learned.Find(name); ok {
		category = learned.Category
		e.learned.IncrementUsage(name)
	} else if product, ok := catalog.ForLanguage(lang).Lookup(name); ok {
		category = product.Category
	}

	e.history.Learn(name, category)
}

// Popular surfaces the catalog's top products by static popularity,
// scored onto a 0..1 scale with the popularity reason tag.
func (e *Engine) Popular(lang catalog.Language, limit int) []Suggestion {
	if limit <= 0 {
		limit = e.maxSuggestions
	}
	products := catalog.ForLanguage(lang).Popular(limit)
	out := make([]Suggestion, 0, len(products))
	for _, p := range products {
		out = append(out, Suggestion{
			Name:     p.Name,
			Category: p.Category,
			Score:    float64(p.Popularity) / 10,
			Reason:   ReasonPopularity,
			Aliases:  p.Aliases,
		})
	}
	return out
}

// AddProduct confirms a product into the learned store.
func (e *Engine) AddProduct(name, category string) {
	if category == "" {
		category = e.fallbackCategory
	}
	e.learned.AddOrUpdate(name, category)
}

// FindProduct looks up a learned product.
func (e *Engine) FindProduct(name string) (history.LearnedProduct, bool) {
	return e.learned.Find(name)
}

// IncrementUsage bumps a learned product's usage counter.
func (e *Engine) IncrementUsage(name string) {
	e.learned.IncrementUsage(name)
}

// ExportHistory returns a copy of the usage history table.
func (e *Engine) ExportHistory() map[string]history.Entry {
	return e.history.Export()
}

// ImportHistory replaces the usage history table wholesale.
func (e *Engine) ImportHistory(table map[string]history.Entry) {
	e.history.Import(table)
}

// CleanupHistory runs the maintenance eviction pass with the configured
// thresholds and reports how many entries were evicted.
func (e *Engine) CleanupHistory() int {
	return e.history.Cleanup(e.maxAgeDays, e.minCountToKeep)
}

// Stats returns counters about the engine's stores.
func (e *Engine) Stats() map[string]int {
	return map[string]int{
		"historyEntries":  e.history.Len(),
		"learnedProducts": e.learned.Len(),
		"catalogEN":       catalog.ForLanguage(catalog.LangEN).Len(),
		"catalogDE":       catalog.ForLanguage(catalog.LangDE).Len(),
	}
}
