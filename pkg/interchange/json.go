package interchange

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/norvik/valbin/pkg/value"
)

// ToJSON renders v as a JSON value document.
func ToJSON(v value.Value) ([]byte, error) {
	n, err := toNode(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(n)
}

// FromJSON parses a JSON value document. Unknown fields are rejected so a
// typo in a hand-written document fails loudly instead of producing an
// ambiguous-node error later.
func FromJSON(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var n node
	if err := dec.Decode(&n); err != nil {
		return value.Value{}, fmt.Errorf("interchange: parse json document: %w", err)
	}
	return fromNode(n)
}
