package convert

import (
	"fmt"
	"strconv"
)

// ToLiteral renders v the way it would appear in a list literal: strings are quoted,
// integral floats keep a trailing ".0" to stay distinguishable from ints.
func ToLiteral(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if _, err := strconv.Atoi(s); err == nil {
			s += ".0"
		}
		return s
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
