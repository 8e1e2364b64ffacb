// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New(10, time.Minute)

	c.Set("a", 1)

	got, ok := c.Get("a")
	if !ok {
		t.Fatal("Get(a) ok = false, want true")
	}
	if got.(int) != 1 {
		t.Errorf("Get(a) = %v, want 1", got)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) ok = true, want false")
	}
}

func TestCacheOverwrite(t *testing.T) {
	c := New(10, time.Minute)

	c.Set("a", 1)
	c.Set("a", 2)

	got, ok := c.Get("a")
	if !ok || got.(int) != 2 {
		t.Errorf("Get(a) = %v, %v, want 2, true", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := New(10, time.Minute)

	c.SetWithTTL("short", "v", time.Nanosecond)
	time.Sleep(time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expired entry still returned")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(3, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Touch "a" so "b" becomes the eviction candidate.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("Get(a) ok = false")
	}

	c.Set("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("b survived eviction, want it evicted as least recently used")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("Get(%s) ok = false, want true", key)
		}
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New(10, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Get(a) after Delete ok = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}

func TestCacheStats(t *testing.T) {
	c := New(2, time.Minute)

	c.Set("a", 1)
	c.Get("a")
	c.Get("missing")

	c.Set("b", 2)
	c.Set("c", 3) // evicts

	stats := c.GetStats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
	if rate := c.HitRate(); rate != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", rate)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New(100, time.Minute)

	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func(g int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%20)
				c.Set(key, g)
				c.Get(key)
			}
		}(g)
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
