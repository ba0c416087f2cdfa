// Package structures provides the loosely typed record access and Slack
// data parsing primitives shared by the extractors.
package structures

import (
	"strconv"
)

// Record is one raw archive record: a JSON object with optional, loosely
// typed fields.  All accessors resolve missing keys and type mismatches to
// the zero value for the requested type, they never fail.  This is
// intentional: a backup archive is never rejected because of a malformed
// field.
type Record map[string]any

// String returns the string value of the key.  Numeric values are rendered
// in their decimal form, so that numeric timestamps and counters stored as
// JSON numbers survive the round trip.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// StringOr returns the string value of the key, or def if the value is
// absent or empty.
func (r Record) StringOr(key, def string) string {
	if s := r.String(key); s != "" {
		return s
	}
	return def
}

// Bool returns the boolean value of the key, false if absent or not a
// boolean.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Int returns the integer value of the key.  JSON numbers arrive as
// float64, strings holding integers are accepted too.
func (r Record) Int(key string) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// Sub returns the nested object under the key, or an empty Record if the
// key is absent or not an object.  It is safe to chain.
func (r Record) Sub(key string) Record {
	m, ok := r[key].(map[string]any)
	if !ok {
		return Record{}
	}
	return Record(m)
}

// List returns the nested array of objects under the key.  ok is false if
// the key is absent or the value is not an array.  Non-object elements
// become empty records, they still yield a (default-filled) row each.
func (r Record) List(key string) (recs []Record, ok bool) {
	raw, ok := r[key].([]any)
	if !ok {
		return nil, false
	}
	return Records(raw), true
}

// Records converts a raw JSON array into records.
func Records(raw []any) []Record {
	recs := make([]Record, len(raw))
	for i, el := range raw {
		if m, ok := el.(map[string]any); ok {
			recs[i] = Record(m)
		} else {
			recs[i] = Record{}
		}
	}
	return recs
}
