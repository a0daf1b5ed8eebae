package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load decodes an embedded JSON table into T. Unknown fields are rejected so
// a typo in a table key fails loudly instead of leaving a zero value.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decode %s: %w", filename, err)
	}

	return result, nil
}
