package observability

import (
	"sync"
	"testing"
)

// TestRecordConcurrent tests concurrent Record calls for race conditions.
func TestRecordConcurrent(t *testing.T) {
	ls := NewLookupStats()
	var wg sync.WaitGroup
	numGoroutines := 10
	recordsPerGoroutine := 100

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < recordsPerGoroutine; j++ {
				ls.Record("clr:string", OutcomeBuiltin)
				ls.Record("store:nvarchar", OutcomeStoreType)
				ls.Record("clr:chrono.Nanos", OutcomeMiss)
			}
		}()
	}

	wg.Wait()

	top := ls.GetTopKeys(10)
	if len(top) != 3 {
		t.Errorf("expected 3 keys, got %d", len(top))
	}

	expectedFreq := int64(numGoroutines * recordsPerGoroutine)
	for _, stat := range top {
		if stat.Frequency != expectedFreq {
			t.Errorf("expected frequency %d for %s, got %d", expectedFreq, stat.Key, stat.Frequency)
		}
	}

	hits, misses := ls.Totals()
	if hits != 2*expectedFreq {
		t.Errorf("expected %d hits, got %d", 2*expectedFreq, hits)
	}
	if misses != expectedFreq {
		t.Errorf("expected %d misses, got %d", expectedFreq, misses)
	}
}

// TestGetTopKeysOrdering tests that GetTopKeys returns results sorted by frequency.
func TestGetTopKeysOrdering(t *testing.T) {
	ls := NewLookupStats()

	for i := 0; i < 5; i++ {
		ls.Record("store:varbinary", OutcomeStoreType)
	}
	for i := 0; i < 3; i++ {
		ls.Record("clr:time.Time", OutcomeBuiltin)
	}
	ls.Record("clr:SqlGeography", OutcomeUDT)

	top := ls.GetTopKeys(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(top))
	}
	if top[0].Key != "store:varbinary" {
		t.Errorf("expected store:varbinary first, got %s", top[0].Key)
	}
	if top[1].Key != "clr:time.Time" {
		t.Errorf("expected clr:time.Time second, got %s", top[1].Key)
	}
}

// TestGetTopKeysCopies tests that returned stats are copies, not live references.
func TestGetTopKeysCopies(t *testing.T) {
	ls := NewLookupStats()
	ls.Record("clr:string", OutcomeBuiltin)

	top := ls.GetTopKeys(1)
	top[0].Outcomes[OutcomeBuiltin] = 99

	again := ls.GetTopKeys(1)
	if again[0].Outcomes[OutcomeBuiltin] != 1 {
		t.Error("GetTopKeys should return copies of outcome maps")
	}
}
