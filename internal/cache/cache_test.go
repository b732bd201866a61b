package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestPutEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache[string, int](2)
	c.Put("alpha", 1)
	c.Put("beta", 2)

	if _, ok := c.Get("alpha"); !ok {
		t.Fatalf("expected alpha to be cached")
	}

	c.Put("gamma", 3)

	if _, ok := c.Get("beta"); ok {
		t.Fatalf("expected beta to be evicted after gamma was added")
	}
	if v, ok := c.Get("alpha"); !ok || v != 1 {
		t.Fatalf("expected alpha=1 to survive eviction, got %v (hit=%v)", v, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
}

func TestPutUpdatesExistingEntryWithoutGrowing(t *testing.T) {
	c := NewLRUCache[string, string](1)
	c.Put("key", "old")
	c.Put("key", "new")

	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
	if v, _ := c.Get("key"); v != "new" {
		t.Fatalf("expected updated value, got %q", v)
	}
}

func TestRemoveAndPurge(t *testing.T) {
	c := NewLRUCache[int, string](4)
	c.Put(1, "a")
	c.Put(2, "b")

	if !c.Remove(1) {
		t.Fatalf("expected Remove to report a hit")
	}
	if c.Remove(1) {
		t.Fatalf("expected second Remove to miss")
	}

	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after purge, got %d", c.Len())
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewLRUCache[string, int](8)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%4)
			c.Put(key, i)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if c.Len() > 8 {
		t.Fatalf("cache grew past capacity: %d", c.Len())
	}
}
