package repository

import (
	"encoding/json"
	"time"
)

// encodeJSON marshals v for a JSON text column. Marshal cannot fail for the
// domain types stored here, so errors collapse to the given fallback literal.
func encodeJSON(v any, fallback string) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fallback
	}
	return string(b)
}

// decodeJSON unmarshals a JSON text column into dst, leaving dst untouched
// on malformed input. Malformed persisted fields default rather than fail:
// farm state is recoverable by replanning.
func decodeJSON(raw string, dst any) {
	if raw == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw), dst)
}

func parseTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
