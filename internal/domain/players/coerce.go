package players

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Missing-value policy for backend fields, shared by every rendering path:
//   - text fields: JSON strings pass through, numbers keep their literal,
//     everything else (absent, null, bool, object, array) becomes "".
//   - numeric fields: JSON numbers pass through, numeric strings are parsed,
//     everything else becomes 0. NaN and infinities become 0.
//   - stat/trend maps: a non-object becomes nil; each value follows the
//     numeric rule.

func coerceString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return ""
		}
		return n.String()
	default:
		return ""
	}
}

func coerceNumber(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}

	var f float64
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		if err := json.Unmarshal(raw, &f); err != nil {
			return 0
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func coerceNumberMap(raw json.RawMessage) map[string]float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	out := make(map[string]float64, len(fields))
	for key, value := range fields {
		out[key] = coerceNumber(value)
	}
	return out
}
