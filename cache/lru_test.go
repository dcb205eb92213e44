package cache

import (
	"crypto/sha256"
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     int
	}{
		{"explicit", 10, 10},
		{"zero uses default", 0, DefaultCapacity},
		{"negative uses default", -5, DefaultCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[string, int](tt.capacity)
			if c.Capacity() != tt.want {
				t.Errorf("Capacity() = %d, want %d", c.Capacity(), tt.want)
			}
			if c.Len() != 0 {
				t.Errorf("Len() = %d, want 0", c.Len())
			}
		})
	}
}

func TestLRUGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("a", 2)

	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v, want 2, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should miss")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRUEviction(t *testing.T) {
	c := New[int, int](3)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3)

	// Touch 1 so 2 becomes the oldest.
	c.Get(1)
	c.Set(4, 4)

	if _, ok := c.Get(2); ok {
		t.Error("2 should have been evicted")
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%d should still be cached", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestLRUGetOrLoad(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	load := func() (int, error) {
		calls++
		return 7, nil
	}

	for range 3 {
		v, err := c.GetOrLoad("k", load)
		if err != nil || v != 7 {
			t.Fatalf("GetOrLoad() = %d, %v, want 7, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}

	errBoom := errors.New("boom")
	_, err := c.GetOrLoad("bad", func() (int, error) { return 0, errBoom })
	if !errors.Is(err, errBoom) {
		t.Errorf("GetOrLoad() error = %v, want %v", err, errBoom)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed loads must not be cached")
	}
}

func TestLRUDeleteClear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Error("cache should be usable after Clear")
	}
}

func TestLRUStats(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 2/1", s.Hits, s.Misses)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("HitRate = %v, want ~0.667", s.HitRate)
	}

	c.ResetStats()
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Error("ResetStats() should zero counters")
	}
}

func TestLRUConcurrent(t *testing.T) {
	c := New[string, int](32)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				key := strconv.Itoa((g * i) % 50)
				_, _ = c.GetOrLoad(key, func() (int, error) { return i, nil })
			}
		}()
	}
	wg.Wait()

	if c.Len() > c.Capacity() {
		t.Errorf("Len() = %d exceeds capacity %d", c.Len(), c.Capacity())
	}
}

func TestKeyOf(t *testing.T) {
	a := KeyOf([]byte("hello"))
	if a != KeyOf([]byte("hello")) {
		t.Error("KeyOf() should be deterministic")
	}
	if a == KeyOf([]byte("world")) {
		t.Error("different input should give different keys")
	}
	if want := ContentKey(sha256.Sum256([]byte("hello"))); a != want {
		t.Errorf("KeyOf() = %x, want %x", a, want)
	}
}

func TestLRUPeek(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Peek("a"); !ok || v != 1 {
		t.Errorf("Peek(a) = %d, %v, want 1, true", v, ok)
	}
	if _, ok := c.Peek("missing"); ok {
		t.Error("Peek(missing) should miss")
	}
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Stats() = %+v, want no hits or misses", s)
	}

	// Peek does not promote, so a is still the oldest.
	c.Set("c", 3)
	if _, ok := c.Peek("a"); ok {
		t.Error("a should have been evicted")
	}
}

func TestLRUContentKeys(t *testing.T) {
	c := New[ContentKey, string](4)
	c.Set(KeyOf([]byte("a")), "first")
	c.Set(KeyOf([]byte("b")), "second")
	if v, ok := c.Get(KeyOf([]byte("b"))); !ok || v != "second" {
		t.Errorf("Get(b) = %q, %v, want second, true", v, ok)
	}
}
