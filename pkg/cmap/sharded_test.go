package cmap

import (
	"fmt"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	m := New[int]()
	if m == nil {
		t.Fatal("New() returned nil")
	}
	if len(m.shards) != DefaultShardCount {
		t.Errorf("shard count = %d, want %d", len(m.shards), DefaultShardCount)
	}
}

func TestNewWithShards(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, DefaultShardCount},  // invalid, falls back
		{-1, DefaultShardCount}, // invalid, falls back
		{3, DefaultShardCount},  // not a power of 2, falls back
		{1, 1},
		{4, 4},
		{32, 32},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("shards=%d", tt.input), func(t *testing.T) {
			m := NewWithShards[int](tt.input)
			if len(m.shards) != tt.expected {
				t.Errorf("NewWithShards(%d) shard count = %d, want %d",
					tt.input, len(m.shards), tt.expected)
			}
		})
	}
}

func TestSetAndGet(t *testing.T) {
	m := New[int]()

	m.Set("key1", 100)
	m.Set("key2", 200)

	val, ok := m.Get("key1")
	if !ok || val != 100 {
		t.Errorf("Get(key1) = (%d, %v), want (100, true)", val, ok)
	}

	val, ok = m.Get("key2")
	if !ok || val != 200 {
		t.Errorf("Get(key2) = (%d, %v), want (200, true)", val, ok)
	}

	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) should report absent")
	}
}

func TestDelete(t *testing.T) {
	m := New[int]()
	m.Set("key", 1)
	m.Delete("key")

	if m.Has("key") {
		t.Error("key should be gone after Delete")
	}

	// Deleting an absent key is a no-op.
	m.Delete("missing")
}

func TestCountAndClear(t *testing.T) {
	m := New[int]()
	for i := 0; i < 100; i++ {
		m.Set(fmt.Sprintf("key-%d", i), i)
	}

	if got := m.Count(); got != 100 {
		t.Errorf("Count() = %d, want 100", got)
	}

	m.Clear()
	if got := m.Count(); got != 0 {
		t.Errorf("Count() after Clear = %d, want 0", got)
	}
}

func TestGetOrSet(t *testing.T) {
	m := New[int]()

	val, existed := m.GetOrSet("key", 1)
	if existed || val != 1 {
		t.Errorf("GetOrSet(new) = (%d, %v), want (1, false)", val, existed)
	}

	val, existed = m.GetOrSet("key", 2)
	if !existed || val != 1 {
		t.Errorf("GetOrSet(existing) = (%d, %v), want (1, true)", val, existed)
	}
}

func TestConcurrentAccess(t *testing.T) {
	m := New[int]()

	var wg sync.WaitGroup
	const goroutines = 32
	const perGoroutine = 100

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				key := fmt.Sprintf("g%d-k%d", g, i)
				m.Set(key, i)
				if v, ok := m.Get(key); !ok || v != i {
					t.Errorf("Get(%s) = (%d, %v), want (%d, true)", key, v, ok, i)
				}
			}
		}(g)
	}
	wg.Wait()

	if got := m.Count(); got != goroutines*perGoroutine {
		t.Errorf("Count() = %d, want %d", got, goroutines*perGoroutine)
	}
}

func TestConcurrentGetOrSet(t *testing.T) {
	m := New[int]()

	var wg sync.WaitGroup
	created := make([]int, 64)
	for g := 0; g < 64; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			_, existed := m.GetOrSet("shared", g)
			if !existed {
				created[g] = 1
			}
		}(g)
	}
	wg.Wait()

	total := 0
	for _, c := range created {
		total += c
	}
	if total != 1 {
		t.Errorf("%d goroutines created the entry, want exactly 1", total)
	}
}
