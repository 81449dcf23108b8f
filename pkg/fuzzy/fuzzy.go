// Package fuzzy implements approximate matching of free-text queries against
// a product catalog. Distances are normalized to 0=identical .. 1=unrelated;
// a match is accepted only below a tunable threshold. The matcher is pure
// computation over the in-memory catalog and does no I/O.
package fuzzy

import (
	"errors"
	"unicode/utf8"

	"github.com/bastiangx/shelfserve/internal/utils"
	"github.com/bastiangx/shelfserve/pkg/catalog"
	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrInvalidInput marks programmer errors (malformed query bytes), distinct
// from the recoverable empty-result conditions.
var ErrInvalidInput = errors.New("fuzzy: query is not valid UTF-8")

// Match pairs a catalog product with its normalized distance to the query.
type Match struct {
	Product  catalog.Product
	Distance float64
}

// Matcher holds the field weights and acceptance threshold.
type Matcher struct {
	threshold   float64
	nameWeight  float64
	aliasWeight float64
	maxQueryLen int
}

// Options tunes a Matcher. Zero values fall back to the defaults.
type Options struct {
	Threshold   float64 // acceptance bound on the 0..1 distance scale
	NameWeight  float64 // weight of the canonical name field
	AliasWeight float64 // weight of the best alias field
	MaxQueryLen int     // queries longer than this are truncated in runes
}

// NewMatcher creates a matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	m := &Matcher{
		threshold:   opts.Threshold,
		nameWeight:  opts.NameWeight,
		aliasWeight: opts.AliasWeight,
		maxQueryLen: opts.MaxQueryLen,
	}
	if m.threshold <= 0 {
		m.threshold = 0.4
	}
	if m.nameWeight <= 0 {
		m.nameWeight = 0.7
	}
	if m.aliasWeight <= 0 {
		m.aliasWeight = 0.3
	}
	if m.maxQueryLen <= 0 {
		m.maxQueryLen = 64
	}
	return m
}

// Match scores every catalog product against the query and returns those
// within the acceptance threshold. The query is normalized and truncated
// before matching so oversized input bounds cost instead of failing.
func (m *Matcher) Match(query string, products []catalog.Product) ([]Match, error) {
	if !utf8.ValidString(query) {
		return nil, ErrInvalidInput
	}

	query = utils.NormalizeName(query)
	query = utils.TruncateRunes(query, m.maxQueryLen)
	if query == "" {
		return nil, nil
	}

	var matches []Match
	for _, p := range products {
		d := m.productDistance(query, p)
		if d <= m.threshold {
			matches = append(matches, Match{Product: p, Distance: d})
		}
	}
	return matches, nil
}

// productDistance blends the name field with the best alias field.
// The alias side can only confirm a name match, never make a candidate
// worse than its name distance alone.
func (m *Matcher) productDistance(query string, p catalog.Product) float64 {
	nameDist := fieldDistance(query, p.Name)
	if len(p.Aliases) == 0 {
		return nameDist
	}

	bestAlias := 1.0
	for _, alias := range p.Aliases {
		if d := fieldDistance(query, alias); d < bestAlias {
			bestAlias = d
		}
	}
	if bestAlias > nameDist {
		bestAlias = nameDist
	}
	return m.nameWeight*nameDist + m.aliasWeight*bestAlias
}

// fieldDistance is the normalized edit distance between the query and one
// field. Partial input is tolerated by also scoring the query against the
// field clipped to the query's length and keeping the smaller distance, so
// "mil" sits next to "milk" instead of half a word away.
func fieldDistance(query, field string) float64 {
	field = utils.NormalizeName(field)
	if field == "" {
		return 1.0
	}
	if query == field {
		return 0
	}

	full := normalizedLevenshtein(query, field)

	qLen := utf8.RuneCountInString(query)
	if qLen < utf8.RuneCountInString(field) {
		clipped := utils.TruncateRunes(field, qLen)
		if prefix := normalizedLevenshtein(query, clipped); prefix < full {
			// Clipping hides the field's tail; keep a small residue so a
			// clipped match never beats an identical full-length one.
			full = prefix + 0.05
		}
	}
	return full
}

// normalizedLevenshtein maps edit distance onto the 0..1 scale by dividing
// through the longer operand.
func normalizedLevenshtein(a, b string) float64 {
	aLen := utf8.RuneCountInString(a)
	bLen := utf8.RuneCountInString(b)
	longer := aLen
	if bLen > longer {
		longer = bLen
	}
	if longer == 0 {
		return 0
	}
	dist := fuzzysearch.LevenshteinDistance(a, b)
	return float64(dist) / float64(longer)
}
