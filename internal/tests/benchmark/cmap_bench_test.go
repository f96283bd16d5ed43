package benchmark

import (
	"fmt"
	"sync"
	"testing"

	"github.com/redisgate/redisgate-go/pkg/cmap"
)

func BenchmarkCmap_Get(b *testing.B) {
	m := cmap.New[int]()
	for i := 0; i < 1000; i++ {
		m.Set(fmt.Sprintf("key-%d", i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(fmt.Sprintf("key-%d", i%1000))
	}
}

func BenchmarkCmap_ConcurrentGetOrSet(b *testing.B) {
	m := cmap.New[int]()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			m.GetOrSet(fmt.Sprintf("key-%d", i%100), i)
			i++
		}
	})
}

func BenchmarkMutexMap_Get(b *testing.B) {
	var mu sync.RWMutex
	m := make(map[string]int, 1000)
	for i := 0; i < 1000; i++ {
		m[fmt.Sprintf("key-%d", i)] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mu.RLock()
		_ = m[fmt.Sprintf("key-%d", i%1000)]
		mu.RUnlock()
	}
}
