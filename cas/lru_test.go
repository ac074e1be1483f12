package cas

import (
	"testing"

	"github.com/timewinder-dev/hanoi/tower"
)

func TestLRUCache_BasicOperation(t *testing.T) {
	underlying := NewMemoryCAS()
	cache := NewLRUCache(underlying, 2) // Small cache for testing

	state1 := tower.NewState(tower.Peg{3, 1}, nil, nil)
	state2 := tower.NewState(tower.Peg{3}, tower.Peg{1}, nil)
	state3 := tower.NewState(tower.Peg{3}, nil, tower.Peg{1})

	hash1, err := cache.Put(state1)
	if err != nil {
		t.Fatalf("Failed to put state1: %v", err)
	}
	hash2, err := cache.Put(state2)
	if err != nil {
		t.Fatalf("Failed to put state2: %v", err)
	}
	hash3, err := cache.Put(state3)
	if err != nil {
		t.Fatalf("Failed to put state3: %v", err)
	}

	retrieved1, err := Retrieve[*tower.State](cache, hash1)
	if err != nil {
		t.Fatalf("Failed to retrieve state1: %v", err)
	}
	if !retrieved1.Equal(state1) {
		t.Errorf("Retrieved state1 is wrong: got %s, want %s", retrieved1, state1)
	}

	// Second retrieval is served from the cache
	if _, err := Retrieve[*tower.State](cache, hash1); err != nil {
		t.Fatalf("Failed to retrieve state1 again: %v", err)
	}
	stats := cache.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("Expected 1 hit and 1 miss, got %d hits and %d misses", stats.Hits, stats.Misses)
	}

	for _, h := range []Hash{hash2, hash3} {
		if _, err := Retrieve[*tower.State](cache, h); err != nil {
			t.Fatalf("Failed to retrieve %d: %v", h, err)
		}
	}

	stats = cache.Stats()
	if stats.Size > stats.MaxSize {
		t.Errorf("Cache size %d exceeds max size %d", stats.Size, stats.MaxSize)
	}

	// state1 was evicted but is still available from the underlying store
	retrieved1, err = Retrieve[*tower.State](cache, hash1)
	if err != nil {
		t.Fatalf("Failed to retrieve evicted state1: %v", err)
	}
	if !retrieved1.Equal(state1) {
		t.Errorf("Retrieved state1 is wrong after eviction: got %s", retrieved1)
	}
	if cache.Stats().Misses != 4 {
		t.Errorf("Expected 4 misses, got %d", cache.Stats().Misses)
	}
}

func TestLRUCache_Has(t *testing.T) {
	underlying := NewMemoryCAS()
	cache := NewLRUCache(underlying, 10)

	hash, err := cache.Put(tower.NewState(tower.Peg{1}, nil, nil))
	if err != nil {
		t.Fatalf("Failed to put state: %v", err)
	}

	if !cache.Has(hash) {
		t.Errorf("Cache should report hash exists")
	}

	if cache.Has(Hash(99999)) {
		t.Errorf("Cache should report non-existent hash doesn't exist")
	}
}

func TestLRUCache_DefaultSize(t *testing.T) {
	cache := NewLRUCache(NewMemoryCAS(), 0)
	if cache.Stats().MaxSize != DefaultCacheSize {
		t.Errorf("Expected default size %d, got %d", DefaultCacheSize, cache.Stats().MaxSize)
	}
}
