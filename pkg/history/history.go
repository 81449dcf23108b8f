// Package history owns the user's mutable suggestion data: the usage
// history table fed by accepted suggestions and the learned-product table
// of explicitly confirmed items. Both persist as whole-table JSON blobs
// through a store.KV adapter and fail open to empty tables on corrupt or
// unreadable data, so degraded suggestions never block data entry.
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

const historyKey = "history"

// Recency step buckets. Coarse on purpose: cheap, stable, and free of
// floating-point drift compared to a continuous decay curve.
const (
	recencyDay     = 24 * time.Hour
	recencyWeek    = 7 * recencyDay
	recencyMonth   = 30 * recencyDay
	recencyQuarter = 90 * recencyDay
)

// Entry is one usage record, keyed externally by normalized product name.
type Entry struct {
	Count    int    `json:"count"`
	LastUsed int64  `json:"lastUsed"` // epoch ms
	Category string `json:"category"`
}

// Candidate is a scored match produced by the history or learned stores
// for the ranker to merge.
type Candidate struct {
	Name     string
	Category string
	Score    float64
}

// Store is the usage history table. It lazy-loads from the KV adapter on
// first use and persists synchronously after every mutation. The store has
// no internal locking: there is exactly one mutator path and the engine
// runs single-threaded per session.
type Store struct {
	kv     store.KV
	weight float64
	table  map[string]Entry
	loaded bool
	now    func() time.Time
}

// NewStore creates a history store. weight is the multiplier that
// privileges history hits over pure catalog matches; scores are therefore
// not bounded to [0,1] and only compare relatively.
func NewStore(kv store.KV, weight float64) *Store {
	if weight <= 0 {
		weight = 2.0
	}
	return &Store{
		kv:     kv,
		weight: weight,
		now:    time.Now,
	}
}

// SetClock replaces the time source. Used by tests to pin recency buckets.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// ensureLoaded reads the persisted table once. Anything unreadable --
// missing key, I/O failure, corrupt JSON -- degrades to an empty table
// with a warning instead of surfacing an error.
func (s *Store) ensureLoaded() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.table = make(map[string]Entry)

	data, err := s.kv.Load(historyKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warnf("history: could not read persisted table, starting empty: %v", err)
		}
		return
	}

	var table map[string]Entry
	if err := json.Unmarshal(data, &table); err != nil {
		log.Warnf("history: persisted table is corrupt, starting empty: %v", err)
		return
	}
	s.table = table
}

// Learn records an accepted suggestion. Existing entries increment their
// count and refresh lastUsed; new entries start at count 1. The table is
// persisted synchronously afterwards, best-effort.
func (s *Store) Learn(name, category string) {
	key := utils.NormalizeName(name)
	if key == "" {
		return
	}
	s.ensureLoaded()

	nowMs := s.now().UnixMilli()
	if entry, ok := s.table[key]; ok {
		entry.Count++
		entry.LastUsed = nowMs
		if category != "" {
			entry.Category = category
		}
		s.table[key] = entry
	} else {
		s.table[key] = Entry{Count: 1, LastUsed: nowMs, Category: category}
	}
	s.persist()
}

// Get returns the entry for a product name, if any.
func (s *Store) Get(name string) (Entry, bool) {
	s.ensureLoaded()
	entry, ok := s.table[utils.NormalizeName(name)]
	return entry, ok
}

// Len returns the number of history entries.
func (s *Store) Len() int {
	s.ensureLoaded()
	return len(s.table)
}

// Match finds history entries whose key matches the normalized query
// exactly, by prefix, or by containment. Containment only kicks in for
// queries of two or more characters so single letters don't pull in half
// the table.
func (s *Store) Match(query string) []Candidate {
	key := utils.NormalizeName(query)
	if key == "" {
		return nil
	}
	s.ensureLoaded()

	var candidates []Candidate
	for name, entry := range s.table {
		if name == key || strings.HasPrefix(name, key) ||
			(len(key) >= 2 && strings.Contains(name, key)) {
			candidates = append(candidates, Candidate{
				Name:     name,
				Category: entry.Category,
				Score:    s.Score(entry),
			})
		}
	}
	return candidates
}

// RecencyScore maps a lastUsed timestamp onto the step buckets:
// within a day 1.0, a week 0.8, a month 0.6, a quarter 0.4, else 0.2.
func (s *Store) RecencyScore(lastUsedMs int64) float64 {
	age := s.now().Sub(time.UnixMilli(lastUsedMs))
	switch {
	case age <= recencyDay:
		return 1.0
	case age <= recencyWeek:
		return 0.8
	case age <= recencyMonth:
		return 0.6
	case age <= recencyQuarter:
		return 0.4
	default:
		return 0.2
	}
}

// Score combines recency and saturating frequency, then applies the
// history weight.
func (s *Store) Score(entry Entry) float64 {
	frequency := float64(entry.Count) / 10
	if frequency > 1 {
		frequency = 1
	}
	return (s.RecencyScore(entry.LastUsed) + frequency) / 2 * s.weight
}

// Cleanup evicts entries that are both older than maxAgeDays and below
// minCountToKeep. Old but frequently used entries survive; young entries
// are never touched. Maintenance only, not part of the query path.
func (s *Store) Cleanup(maxAgeDays, minCountToKeep int) int {
	s.ensureLoaded()

	cutoff := s.now().Add(-time.Duration(maxAgeDays) * recencyDay).UnixMilli()
	evicted := 0
	for name, entry := range s.table {
		if entry.LastUsed < cutoff && entry.Count < minCountToKeep {
			delete(s.table, name)
			evicted++
		}
	}
	if evicted > 0 {
		s.persist()
		log.Debugf("history: cleanup evicted %d entries", evicted)
	}
	return evicted
}

// Export returns a copy of the table for backup.
func (s *Store) Export() map[string]Entry {
	s.ensureLoaded()
	out := make(map[string]Entry, len(s.table))
	for name, entry := range s.table {
		out[name] = entry
	}
	return out
}

// Import replaces the table wholesale (no merge) and persists.
func (s *Store) Import(table map[string]Entry) {
	s.loaded = true
	s.table = make(map[string]Entry, len(table))
	for name, entry := range table {
		s.table[utils.NormalizeName(name)] = entry
	}
	s.persist()
}

// persist writes the table through the adapter. Failures are logged and
// swallowed: the in-memory state keeps the learned change for the rest of
// the session even when it could not be durably saved.
func (s *Store) persist() {
	data, err := json.Marshal(s.table)
	if err != nil {
		log.Errorf("history: could not encode table: %v", err)
		return
	}
	if err := s.kv.Save(historyKey, data); err != nil {
		log.Errorf("history: could not persist table: %v", err)
	}
}
