package storage

import (
	"encoding/json"
	"fmt"
)

type missing struct{}

// Missing marks a field as absent in a hand-assembled document tree. It is
// distinct from an explicit null: the remote store rejects absent-marker
// fields, so Sanitize strips them before any write, while nulls pass through.
var Missing = missing{}

// Sanitize walks a plain document tree and drops every map entry whose value
// is the Missing marker. Arrays are walked element-wise; all other values pass
// through unchanged. The transform is total for well-formed (acyclic) input
// and idempotent.
func Sanitize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, entry := range val {
			if entry == any(Missing) {
				continue
			}
			out[k] = Sanitize(entry)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, entry := range val {
			out[i] = Sanitize(entry)
		}
		return out
	default:
		return v
	}
}

// Encode produces the canonical JSON payload written to every store: the
// value is sanitized first, so Missing markers never reach a backend. This
// runs on every write path, live trip and archives alike.
func Encode(v any) (json.RawMessage, error) {
	data, err := json.Marshal(Sanitize(v))
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}
