package gateway

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/diewo77/indh-market/internal/domain"
)

// The accessors below decode loosely typed driver values into Go types and
// fail with a ValidationError naming the offending column.

// String returns the column as a string. Missing or null is "" unless required.
func (r Row) String(col string, required bool) (string, error) {
	v, ok := r[col]
	if !ok || v == nil {
		if required {
			return "", missing(col)
		}
		return "", nil
	}
	switch s := v.(type) {
	case string:
		if required && s == "" {
			return "", missing(col)
		}
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", mismatch(col, "string", v)
	}
}

// Float accepts any numeric driver representation, including numeric strings.
func (r Row) Float(col string) (float64, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, mismatch(col, "number", v)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, mismatch(col, "number", v)
		}
		return f, nil
	case []byte:
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return 0, mismatch(col, "number", v)
		}
		return f, nil
	default:
		return 0, mismatch(col, "number", v)
	}
}

// Int is Float restricted to whole values that fit in an int.
func (r Row) Int(col string) (int, error) {
	f, err := r.Float(col)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, mismatch(col, "integer", r[col])
	}
	return int(f), nil
}

// Time accepts time.Time and the textual forms sqlite and JSON produce.
func (r Row) Time(col string, required bool) (time.Time, error) {
	v, ok := r[col]
	if !ok || v == nil {
		if required {
			return time.Time{}, missing(col)
		}
		return time.Time{}, nil
	}
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, nil
			}
		}
	}
	return time.Time{}, mismatch(col, "timestamp", v)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Nested returns the joined sub-row for table, or nil when the join matched nothing.
func (r Row) Nested(table string) (Row, error) {
	v, ok := r[table]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case Row:
		return n, nil
	case map[string]any:
		return Row(n), nil
	default:
		return nil, mismatch(table, "object", v)
	}
}

func missing(col string) error {
	return domain.Invalid(col, "required", "row is missing column %q", col)
}

func mismatch(col, want string, got any) error {
	return domain.Invalid(col, "invalid_type", "column %q: expected %s, got %T", col, want, got)
}

// Copy returns a shallow copy of r.
func (r Row) Copy() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
