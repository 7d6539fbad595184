package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Row is a single result row from the store, keyed by the lowercase
// column aliases the query composers emit.
type Row map[string]interface{}

// String returns the value as a string, or "" when absent or NULL.
func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Bool returns the value as a bool. Accepts driver-native bools as well
// as the textual and numeric forms SQLite produces.
func (r Row) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	case []byte:
		b, _ := strconv.ParseBool(string(v))
		return b
	default:
		return false
	}
}

// IntPtr returns the value as *int, nil when absent or NULL.
func (r Row) IntPtr(key string) *int {
	switch v := r[key].(type) {
	case int64:
		i := int(v)
		return &i
	case int32:
		i := int(v)
		return &i
	case int:
		return &v
	case float64:
		i := int(v)
		return &i
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return &i
		}
	case []byte:
		if i, err := strconv.Atoi(strings.TrimSpace(string(v))); err == nil {
			return &i
		}
	}
	return nil
}

// FloatPtr returns the value as *float64, nil when absent or NULL.
func (r Row) FloatPtr(key string) *float64 {
	switch v := r[key].(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
	case []byte:
		if f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64); err == nil {
			return &f
		}
	}
	return nil
}

// RoundedFloatPtr returns the value rounded to two decimal places.
// Used for distances so responses never leak raw haversine precision.
func (r Row) RoundedFloatPtr(key string) *float64 {
	f := r.FloatPtr(key)
	if f == nil {
		return nil
	}
	rounded := math.Round(*f*100) / 100
	return &rounded
}

// Time returns the value formatted as RFC3339, or "" when absent.
func (r Row) Time(key string) string {
	switch v := r[key].(type) {
	case time.Time:
		return v.Format(time.RFC3339)
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// StringSlice returns the value as a string slice. Handles native
// slices, JSON arrays and the `{a,b}` text form PostgreSQL uses for
// array aggregates read through database/sql.
func (r Row) StringSlice(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return parseArrayLiteral(v)
	case []byte:
		return parseArrayLiteral(string(v))
	default:
		return nil
	}
}

func parseArrayLiteral(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "{}" || raw == "[]" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			return out
		}
		return nil
	}
	raw = strings.TrimPrefix(raw, "{")
	raw = strings.TrimSuffix(raw, "}")
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"`)
		if p != "" && p != "NULL" {
			out = append(out, p)
		}
	}
	return out
}
