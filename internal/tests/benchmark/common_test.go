package benchmark

import (
	"fmt"

	"github.com/redisgate/redisgate-go/internal/core/domain"
)

// ArraySizes defines reply array sizes for benchmarking.
var ArraySizes = []int{1, 10, 100, 1000}

// makeArrayValue builds a string array reply of n elements.
func makeArrayValue(n int) domain.Value {
	items := make([]domain.Value, n)
	for i := 0; i < n; i++ {
		items[i] = domain.StringValue(fmt.Sprintf("member-%d", i))
	}
	return domain.ArrayValue(items...)
}

// makeMapValue builds a map reply of n entries.
func makeMapValue(n int) domain.Value {
	entries := make([]domain.MapEntry, n)
	for i := 0; i < n; i++ {
		entries[i] = domain.MapEntry{
			Key:   domain.StringValue(fmt.Sprintf("field-%d", i)),
			Value: domain.StringValue(fmt.Sprintf("value-%d", i)),
		}
	}
	return domain.MapValue(entries...)
}
