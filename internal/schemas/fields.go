package schemas

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Accepted date-time layouts. Date-only values normalize to midnight UTC.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// normText trims surrounding whitespace and applies Unicode NFC, so that
// visually identical inputs compare equal after decoding.
func normText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func (c *collector) text(m map[string]any, field string) string {
	v, ok := m[field]
	if !ok {
		c.add(field, CodeMissing, field+" is required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		c.add(field, CodeWrongType, field+" must be text")
		return ""
	}
	if strings.ContainsRune(s, '\x00') {
		c.add(field, CodeInvalid, field+" contains a NUL byte")
		return ""
	}
	return normText(s)
}

func (c *collector) integer(m map[string]any, field string) int64 {
	v, ok := m[field]
	if !ok {
		c.add(field, CodeMissing, field+" is required")
		return 0
	}
	n, ok := toInt64(v)
	if !ok {
		c.add(field, CodeWrongType, field+" must be an integer")
		return 0
	}
	return n
}

func (c *collector) nonNegInteger(m map[string]any, field string) int64 {
	n := c.integer(m, field)
	if n < 0 {
		c.add(field, CodeInvalid, field+" must not be negative")
		return 0
	}
	return n
}

func (c *collector) dateTime(m map[string]any, field string) time.Time {
	v, ok := m[field]
	if !ok {
		c.add(field, CodeMissing, field+" is required")
		return time.Time{}
	}
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		for _, layout := range dateTimeLayouts {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts.UTC()
			}
		}
		c.add(field, CodeInvalid, field+" must be a date-time (RFC 3339 or YYYY-MM-DD)")
		return time.Time{}
	default:
		c.add(field, CodeWrongType, field+" must be a date-time string")
		return time.Time{}
	}
}

// unknownKeys flags every key of m that is not in the shape's field list.
func (c *collector) unknownKeys(m map[string]any, known ...string) {
	for k := range m {
		found := false
		for _, f := range known {
			if k == f {
				found = true
				break
			}
		}
		if !found {
			c.add(k, CodeUnknown, k+" is not a recognized field")
		}
	}
}

// toInt64 accepts the integer representations that show up in decoded JSON
// and in hand-built mappings. Fractional floats are rejected.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}
		// conversion of an out-of-range float64 is implementation-defined
		if n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
