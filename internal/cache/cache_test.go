package cache

import (
	"bytes"
	"fmt"
	"testing"
	"time"
)

func TestCache_GetPut(t *testing.T) {
	c := New(16)

	key := Key("en", "/blog/hello/")
	data := []byte("<html>rendered page</html>")

	c.Put(key, data, "content/posts/hello.md")

	retrieved, found := c.Get(key)
	if !found {
		t.Fatal("data not found in cache")
	}
	if !bytes.Equal(retrieved, data) {
		t.Errorf("retrieved data doesn't match: got %s, want %s", retrieved, data)
	}

	stats := c.GetStats()
	if stats.Hits != 1 {
		t.Errorf("expected 1 hit, got %d", stats.Hits)
	}

	if _, found := c.Get(Key("de", "/blog/hello/")); found {
		t.Error("found non-existent key")
	}
	if stats := c.GetStats(); stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
}

func TestCache_KeyIsPositional(t *testing.T) {
	if Key("ab", "c") == Key("a", "bc") {
		t.Error("keys with shifted boundaries must differ")
	}
	if Key("en", "/") != Key("en", "/") {
		t.Error("identical inputs must produce identical keys")
	}
}

func TestCache_InvalidateByDependency(t *testing.T) {
	c := New(16)

	c.Put(Key("en", "/"), []byte("home en"), "locales/en.json")
	c.Put(Key("de", "/"), []byte("home de"), "locales/de.json")
	c.Put(Key("en", "/blog/a/"), []byte("post"), "locales/en.json", "content/posts/a.md")

	dropped := c.InvalidateByDependency("locales/en.json")
	if dropped != 2 {
		t.Errorf("dropped %d entries, want 2", dropped)
	}

	if _, found := c.Get(Key("de", "/")); !found {
		t.Error("unrelated entry was invalidated")
	}
	if _, found := c.Get(Key("en", "/")); found {
		t.Error("invalidated entry still present")
	}
}

func TestCache_Eviction(t *testing.T) {
	c := New(2)

	c.Put("a", []byte("a"))
	time.Sleep(time.Millisecond)
	c.Put("b", []byte("b"))
	time.Sleep(time.Millisecond)

	// Touch "a" so "b" becomes the oldest.
	c.Get("a")
	time.Sleep(time.Millisecond)

	c.Put("c", []byte("c"))

	if _, found := c.Get("b"); found {
		t.Error("expected LRU entry to be evicted")
	}
	if _, found := c.Get("a"); !found {
		t.Error("recently used entry was evicted")
	}
	if stats := c.GetStats(); stats.Evictions != 1 {
		t.Errorf("expected 1 eviction, got %d", stats.Evictions)
	}
}

func TestCache_Clear(t *testing.T) {
	c := New(4)
	for i := 0; i < 3; i++ {
		c.Put(fmt.Sprintf("key-%d", i), []byte("x"))
	}

	c.Clear()
	if stats := c.GetStats(); stats.Entries != 0 {
		t.Errorf("expected empty cache, got %d entries", stats.Entries)
	}
}
