package response

import (
	"bytes"
	"encoding/json"
)

// DecodeList accepts the two list shapes the backend has shipped over time:
// a bare JSON array, and a paginated {data, total} envelope. The reported
// total falls back to the element count when the envelope omits it.
func DecodeList(body []byte) ([]json.RawMessage, int, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, 0, err
		}
		return items, len(items), nil
	}

	var envelope struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, 0, err
	}
	total := envelope.Total
	if total == 0 {
		total = len(envelope.Data)
	}
	return envelope.Data, total, nil
}

// hasField reports whether the raw object carries the named key. Shape
// detection is a presence probe, not a versioned schema; the backend does not
// send a discriminator.
func hasField(raw json.RawMessage, name string) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	_, ok := probe[name]
	return ok
}
