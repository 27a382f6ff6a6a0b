// Package observability provides lookup statistics tracking for the type
// mapping registry.
package observability

import (
	"sort"
	"sync"
	"time"
)

// Outcome labels for recorded lookups.
const (
	OutcomeBuiltin   = "builtin"
	OutcomeUDT       = "udt"
	OutcomeStoreType = "store_type"
	OutcomeMiss      = "miss"
)

// LookupStats tracks resolution frequency per lookup key. Registries record
// every FindMapping call here so operators can see which types an application
// actually resolves and which requests fail.
type LookupStats struct {
	mu      sync.RWMutex
	keyFreq map[string]*KeyStats
	hits    int64
	misses  int64
}

// KeyStats holds statistics for one lookup key.
type KeyStats struct {
	Key       string
	Frequency int64
	LastSeen  time.Time
	Outcomes  map[string]int // outcome → count (e.g. "builtin" → 5)
}

// NewLookupStats creates a new lookup statistics tracker.
func NewLookupStats() *LookupStats {
	return &LookupStats{
		keyFreq: make(map[string]*KeyStats),
	}
}

// Record records one lookup for a key with its outcome.
// This method is O(1) and thread-safe.
func (s *LookupStats) Record(key, outcome string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, exists := s.keyFreq[key]
	if !exists {
		stats = &KeyStats{
			Key:      key,
			Outcomes: make(map[string]int),
		}
		s.keyFreq[key] = stats
	}

	stats.Frequency++
	stats.LastSeen = time.Now()
	stats.Outcomes[outcome]++

	if outcome == OutcomeMiss {
		s.misses++
	} else {
		s.hits++
	}
}

// Totals returns the total hit and miss counts.
func (s *LookupStats) Totals() (hits, misses int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hits, s.misses
}

// GetTopKeys returns up to n keys sorted by descending frequency.
func (s *LookupStats) GetTopKeys(n int) []KeyStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]KeyStats, 0, len(s.keyFreq))
	for _, stats := range s.keyFreq {
		cp := *stats
		cp.Outcomes = make(map[string]int, len(stats.Outcomes))
		for k, v := range stats.Outcomes {
			cp.Outcomes[k] = v
		}
		all = append(all, cp)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Frequency != all[j].Frequency {
			return all[i].Frequency > all[j].Frequency
		}
		return all[i].Key < all[j].Key
	})

	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
