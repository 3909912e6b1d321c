package query

import (
	"encoding/json"
	"fmt"
)

// Record is one loosely-typed row from an upstream collection endpoint
// (a pool, protocol, chain or price entry). Schemas vary by endpoint and
// are not validated here; accessors degrade to typed defaults
type Record map[string]interface{}

// Number reads field as a float64. The second return reports whether the
// field was present and numeric; the value is 0 otherwise
func (r Record) Number(field string) (float64, bool) {
	value, exists := r[field]
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Text reads field as a string, returning "" for missing or non-string values
func (r Record) Text(field string) string {
	if value, exists := r[field]; exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

// Bool reads field as a bool, returning false for missing or non-bool values
func (r Record) Bool(field string) bool {
	if value, exists := r[field]; exists {
		if b, ok := value.(bool); ok {
			return b
		}
	}
	return false
}

// UnwrapRecords resolves the two response shapes collection endpoints use
// (a bare JSON array, or an object wrapping the array under "data") into
// a flat record slice. Resolved once here so call sites never shape-sniff
func UnwrapRecords(raw json.RawMessage) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var wrapped struct {
		Data []Record `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	return nil, fmt.Errorf("payload is neither a record list nor a data-wrapped list")
}
