package query

import "sort"

// sortAliases maps external pool sort keys to the field names the pools
// schema actually carries. Unknown keys pass through unchanged. Other
// schemas (protocols, chains) use their field names directly
var sortAliases = map[string]string{
	"tvl":    "tvlUsd",
	"change": "change_1h",
}

// ResolveSortField resolves an external pool sort key through the alias
// table
func ResolveSortField(field string) string {
	if resolved, ok := sortAliases[field]; ok {
		return resolved
	}
	return field
}

// SortRecords returns records ordered by field. Records missing the
// field, or holding a non-numeric value, sort as 0. The sort is stable:
// equal keys keep their input order. Descending unless ascending is
// requested. Never fails; malformed rows degrade, they do not abort the
// batch
func SortRecords(records []Record, field string, ascending bool) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		vi, _ := sorted[i].Number(field)
		vj, _ := sorted[j].Number(field)
		if ascending {
			return vi < vj
		}
		return vi > vj
	})

	return sorted
}

// Limit truncates records to the first n entries. n <= 0 means unlimited.
// Callers compose filters, then sort, then limit, in that fixed order
func Limit(records []Record, n int) []Record {
	if n <= 0 || n >= len(records) {
		return records
	}
	return records[:n]
}
