package manifest

import (
	"bytes"
	"encoding/json"
)

// Marshal encodes v as two-space indented JSON with a trailing newline.
// HTML characters are kept literal so "<all_urls>" survives unescaped.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
