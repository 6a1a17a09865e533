package convert

import (
	"strconv"
	"strings"
)

// ToFloat tries to convert v into a float. Booleans are not considered numbers.
func ToFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		// in case it comes with german float notation
		v = strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// MustFloats converts all vs; it returns false as soon as one value is not convertible
func MustFloats(vs []any) ([]float64, bool) {
	fs := make([]float64, len(vs))
	for i, v := range vs {
		f, ok := ToFloat(v)
		if !ok {
			return nil, false
		}
		fs[i] = f
	}
	return fs, true
}
