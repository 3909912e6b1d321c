package query

import "strings"

// MatchMode selects how Membership compares values
type MatchMode int

const (
	// MatchExact keeps records whose field equals one of the allowed
	// values after case-folding
	MatchExact MatchMode = iota
	// MatchSubstring keeps records when any allowed value appears within
	// the record's field after case-folding (symbol matching)
	MatchSubstring
)

// Filter is one declarative predicate over a record
type Filter interface {
	// Keep reports whether the record passes the predicate
	Keep(r Record) bool
}

// MinThreshold keeps records whose field is >= Value. A missing or
// non-numeric field reads as 0, so any positive minimum excludes it
type MinThreshold struct {
	Field string
	Value float64
}

func (f MinThreshold) Keep(r Record) bool {
	v, _ := r.Number(f.Field)
	return v >= f.Value
}

// MaxThreshold keeps records whose field is present, numeric and <= Value
type MaxThreshold struct {
	Field string
	Value float64
}

func (f MaxThreshold) Keep(r Record) bool {
	v, ok := r.Number(f.Field)
	return ok && v <= f.Value
}

// Membership keeps records whose field matches one of Values,
// case-insensitively, per Mode
type Membership struct {
	Field  string
	Values []string
	Mode   MatchMode
}

func (f Membership) Keep(r Record) bool {
	if len(f.Values) == 0 {
		return true
	}

	field := strings.ToLower(r.Text(f.Field))
	for _, value := range f.Values {
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			continue
		}
		switch f.Mode {
		case MatchSubstring:
			if strings.Contains(field, value) {
				return true
			}
		default:
			if field == value {
				return true
			}
		}
	}
	return false
}

// ApplyFilters discards records failing any filter. Filters are
// commutative: their order never changes the result set
func ApplyFilters(records []Record, filters []Filter) []Record {
	if len(filters) == 0 {
		return records
	}

	result := make([]Record, 0, len(records))
	for _, record := range records {
		keep := true
		for _, filter := range filters {
			if !filter.Keep(record) {
				keep = false
				break
			}
		}
		if keep {
			result = append(result, record)
		}
	}
	return result
}
