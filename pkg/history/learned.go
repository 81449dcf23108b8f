package history

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bastiangx/shelfserve/internal/utils"
	"github.com/bastiangx/shelfserve/pkg/store"
	"github.com/charmbracelet/log"
)

const learnedKey = "learned"

// Learned-match scoring tiers. Exact and prefix matches grow unbounded
// with use so a frequently confirmed product always outranks a merely
// similar catalog entry.
const (
	learnedExactBase  = 1.0
	learnedExactStep  = 0.1
	learnedSubstrBase = 0.8
	learnedSubstrStep = 0.05
)

// LearnedProduct is a user-confirmed product with its own category choice.
// It takes precedence over the catalog.
type LearnedProduct struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	AddedAt    int64  `json:"addedAt"` // epoch ms
	UsageCount int    `json:"usageCount"`
}

// LearnedStore is the persisted learned-product table. At most one entry
// exists per normalized name; re-adding updates the category and bumps the
// usage counter instead of duplicating.
type LearnedStore struct {
	kv     store.KV
	items  []LearnedProduct
	index  map[string]int
	loaded bool
	now    func() time.Time
}

// NewLearnedStore creates a learned-product store over a KV adapter.
func NewLearnedStore(kv store.KV) *LearnedStore {
	return &LearnedStore{
		kv:  kv,
		now: time.Now,
	}
}

// SetClock replaces the time source for tests.
func (ls *LearnedStore) SetClock(now func() time.Time) {
	ls.now = now
}

func (ls *LearnedStore) ensureLoaded() {
	if ls.loaded {
		return
	}
	ls.loaded = true
	ls.index = make(map[string]int)

	data, err := ls.kv.Load(learnedKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warnf("learned: could not read persisted table, starting empty: %v", err)
		}
		return
	}

	var items []LearnedProduct
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warnf("learned: persisted table is corrupt, starting empty: %v", err)
		return
	}
	ls.items = items
	for i, item := range items {
		ls.index[utils.NormalizeName(item.Name)] = i
	}
}

// AddOrUpdate confirms a product. A new name is recorded with usage 1;
// re-adding an existing one updates its category and increments usage.
func (ls *LearnedStore) AddOrUpdate(name, category string) {
	key := utils.NormalizeName(name)
	if key == "" {
		return
	}
	ls.ensureLoaded()

	if i, ok := ls.index[key]; ok {
		if category != "" {
			ls.items[i].Category = category
		}
		ls.items[i].UsageCount++
	} else {
		ls.index[key] = len(ls.items)
		ls.items = append(ls.items, LearnedProduct{
			Name:       strings.TrimSpace(name),
			Category:   category,
			AddedAt:    ls.now().UnixMilli(),
			UsageCount: 1,
		})
	}
	ls.persist()
}

// Find looks up a learned product by name, case-insensitive.
func (ls *LearnedStore) Find(name string) (LearnedProduct, bool) {
	ls.ensureLoaded()
	if i, ok := ls.index[utils.NormalizeName(name)]; ok {
		return ls.items[i], true
	}
	return LearnedProduct{}, false
}

// IncrementUsage bumps the usage counter of an existing learned product.
// Unknown names are a no-op.
func (ls *LearnedStore) IncrementUsage(name string) {
	ls.ensureLoaded()
	if i, ok := ls.index[utils.NormalizeName(name)]; ok {
		ls.items[i].UsageCount++
		ls.persist()
	}
}

// Len returns the number of learned products.
func (ls *LearnedStore) Len() int {
	ls.ensureLoaded()
	return len(ls.items)
}

// Match finds learned products for a query in three tiers: exact name
// equality, prefix, then containment (queries of two or more characters
// only). Exact and prefix hits score on the unbounded 1.0 tier, containment
// on the 0.8 tier.
func (ls *LearnedStore) Match(query string) []Candidate {
	key := utils.NormalizeName(query)
	if key == "" {
		return nil
	}
	ls.ensureLoaded()

	var candidates []Candidate
	for _, item := range ls.items {
		name := utils.NormalizeName(item.Name)
		usage := float64(item.UsageCount)

		switch {
		case name == key || strings.HasPrefix(name, key):
			candidates = append(candidates, Candidate{
				Name:     item.Name,
				Category: item.Category,
				Score:    learnedExactBase + usage*learnedExactStep,
			})
		case len(key) >= 2 && strings.Contains(name, key):
			candidates = append(candidates, Candidate{
				Name:     item.Name,
				Category: item.Category,
				Score:    learnedSubstrBase + usage*learnedSubstrStep,
			})
		}
	}
	return candidates
}

func (ls *LearnedStore) persist() {
	data, err := json.Marshal(ls.items)
	if err != nil {
		log.Errorf("learned: could not encode table: %v", err)
		return
	}
	if err := ls.kv.Save(learnedKey, data); err != nil {
		log.Errorf("learned: could not persist table: %v", err)
	}
}
