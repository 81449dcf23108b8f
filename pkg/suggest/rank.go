package suggest

import (
	"sort"
	"strings"

	"github.com/bastiangx/shelfserve/internal/utils"
)

// rank orders candidates by the tiered comparator. Each rule only breaks
// ties left by the previous one:
//  1. exact case-insensitive name equality to the query
//  2. name starting with the query
//  3. history candidates before anything else
//  4. descending score
//
// The tiers are hard guarantees, not score tuning: an exact or prefix match
// must look obviously right no matter how the fuzzy engine scores a near
// duplicate, and the user's own history must outrank generic catalog
// matches even when the raw fuzzy score is higher.
func rank(candidates []Suggestion, query string) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		aName := utils.NormalizeName(a.Name)
		bName := utils.NormalizeName(b.Name)

		aExact := aName == query
		bExact := bName == query
		if aExact != bExact {
			return aExact
		}

		aPrefix := strings.HasPrefix(aName, query)
		bPrefix := strings.HasPrefix(bName, query)
		if aPrefix != bPrefix {
			return aPrefix
		}

		aHist := a.Reason == ReasonHistory
		bHist := b.Reason == ReasonHistory
		if aHist != bHist {
			return aHist
		}

		if a.Score != b.Score {
			return a.Score > b.Score
		}
		// Name as the last resort keeps the order deterministic across
		// map iteration.
		return aName < bName
	})
}

// dedupe collapses candidates sharing a normalized name, keeping the
// occurrence with the higher score. Discovery order does not matter: the
// rule is max score wins, not first seen wins.
func dedupe(candidates []Suggestion) []Suggestion {
	if len(candidates) < 2 {
		return candidates
	}

	best := make(map[string]int, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		key := utils.NormalizeName(c.Name)
		if i, ok := best[key]; ok {
			if c.Score > out[i].Score {
				out[i] = c
			}
			continue
		}
		best[key] = len(out)
		out = append(out, c)
	}
	return out
}
