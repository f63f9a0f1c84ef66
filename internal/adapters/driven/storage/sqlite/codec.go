package sqlite

import (
	"fmt"
	"time"
)

// Codec converts between a domain value and its store-native
// representation. Codecs are pure and deterministic and obey the
// round-trip law: Decode(Encode(t)) == t for every domain value t and
// Encode(Decode(x)) == x for every representable stored value x.
//
// Codecs are registered on columns in the schema description; the
// query layer converts through them on every bind and scan, so query
// code never converts inline.
type Codec interface {
	Encode(v any) (any, error)
	Decode(v any) (any, error)
}

// TimeMillis stores time.Time as a 64-bit epoch-millisecond integer.
// Decoded values are UTC; sub-millisecond precision is not
// representable and must be truncated before writing.
type TimeMillis struct{}

// Encode converts a time.Time to epoch milliseconds.
func (TimeMillis) Encode(v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("encoding time column: got %T, want time.Time", v)
	}
	return t.UnixMilli(), nil
}

// Decode converts epoch milliseconds back to a UTC time.Time.
func (TimeMillis) Decode(v any) (any, error) {
	ms, ok := v.(int64)
	if !ok {
		return nil, fmt.Errorf("decoding time column: got %T, want int64", v)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// encodeColumn runs the codec registered for table.column, if any.
func (s *Store) encodeColumn(table, column string, v any) (any, error) {
	c := s.codecs[table][column]
	if c == nil {
		return v, nil
	}
	out, err := c.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("column %s.%s: %w", table, column, err)
	}
	return out, nil
}

// decodeColumn is the scan-side counterpart of encodeColumn.
func (s *Store) decodeColumn(table, column string, v any) (any, error) {
	c := s.codecs[table][column]
	if c == nil {
		return v, nil
	}
	out, err := c.Decode(v)
	if err != nil {
		return nil, fmt.Errorf("column %s.%s: %w", table, column, err)
	}
	return out, nil
}
