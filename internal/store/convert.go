package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/redisgate/redisgate-go/internal/core/domain"
)

// FromReply converts a raw go-redis reply into a domain value. The
// conversion is total: shapes outside the known set degrade to their
// printed form rather than failing.
//
// Map replies lose their wire order inside Go's map type, so entries are
// sorted by key text to keep output deterministic.
func FromReply(reply any) domain.Value {
	switch r := reply.(type) {
	case nil:
		return domain.Null()
	case bool:
		return domain.BoolValue(r)
	case int64:
		return domain.IntValue(r)
	case int:
		return domain.IntValue(int64(r))
	case float64:
		return domain.FloatValue(r)
	case string:
		return domain.StringValue(r)
	case []byte:
		return domain.BytesValue(r)
	case error:
		return domain.ErrorValue(strings.TrimPrefix(r.Error(), "ERR "))
	case []any:
		elems := make([]domain.Value, len(r))
		for i, e := range r {
			elems[i] = FromReply(e)
		}
		return domain.Value{Kind: domain.KindArray, Array: elems}
	case map[any]any:
		entries := make([]domain.MapEntry, 0, len(r))
		for k, v := range r {
			entries = append(entries, domain.MapEntry{
				Key:   FromReply(k),
				Value: FromReply(v),
			})
		}
		sortEntries(entries)
		return domain.Value{Kind: domain.KindMap, Map: entries}
	case map[string]any:
		entries := make([]domain.MapEntry, 0, len(r))
		for k, v := range r {
			entries = append(entries, domain.MapEntry{
				Key:   domain.StringValue(k),
				Value: FromReply(v),
			})
		}
		sortEntries(entries)
		return domain.Value{Kind: domain.KindMap, Map: entries}
	default:
		return domain.StringValue(fmt.Sprint(r))
	}
}

func sortEntries(entries []domain.MapEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key.Text() < entries[j].Key.Text()
	})
}
