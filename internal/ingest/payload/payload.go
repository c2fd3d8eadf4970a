// Package payload normalizes the loosely typed JSON documents returned by the
// upstream data provider. Every accessor is total: malformed, missing, or
// mistyped input collapses to a null value instead of an error, so one bad
// field never aborts a batch.
package payload

import (
	"encoding/json"
	"strconv"
)

// Nested walks obj through keys and returns the value at the end of the
// chain, or nil the moment any intermediate is missing or not an object.
func Nested(obj any, keys ...string) any {
	cur := obj
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[k]
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Map returns the object at the end of the key chain, or nil.
func Map(obj any, keys ...string) map[string]any {
	m, _ := Nested(obj, keys...).(map[string]any)
	return m
}

// List returns the array at the end of the key chain. Null, missing, or
// non-array values all come back as an empty slice.
func List(obj any, keys ...string) []any {
	l, _ := Nested(obj, keys...).([]any)
	return l
}

// String coerces v to a string pointer. Numbers keep their literal form,
// everything else is null.
func String(v any) *string {
	switch t := v.(type) {
	case string:
		return &t
	case json.Number:
		s := t.String()
		return &s
	default:
		return nil
	}
}

// Int coerces v to an integer pointer. Fractional values are null rather
// than silently truncated.
func Int(v any) *int64 {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return nil
		}
		return &n
	case float64:
		n := int64(t)
		if float64(n) != t {
			return nil
		}
		return &n
	case int:
		n := int64(t)
		return &n
	case int64:
		return &t
	default:
		return nil
	}
}

// Bool coerces v to a bool pointer.
func Bool(v any) *bool {
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}

// Dec coerces v to a Decimal, keeping the upstream digits verbatim so
// monetary values never pass through a float.
func Dec(v any) Decimal {
	switch t := v.(type) {
	case json.Number:
		return Decimal{Number: t.String(), Valid: true}
	case string:
		if _, err := strconv.ParseFloat(t, 64); err != nil {
			return Decimal{}
		}
		return Decimal{Number: t, Valid: true}
	case float64:
		return Decimal{Number: strconv.FormatFloat(t, 'f', -1, 64), Valid: true}
	case int:
		return Decimal{Number: strconv.Itoa(t), Valid: true}
	case int64:
		return Decimal{Number: strconv.FormatInt(t, 10), Valid: true}
	default:
		return Decimal{}
	}
}
