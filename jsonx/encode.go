package jsonx

import (
	"encoding/json"
	"fmt"
	"io"
)

// Encode writes t as JSON to w, optionally indented by two spaces
func Encode[T any](w io.Writer, t T, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode-json: %w", err)
	}
	return nil
}
