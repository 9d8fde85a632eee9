package schedule

import (
	"math"
	"strconv"
	"strings"
)

// DurationBounds bounds the reservation duration in minutes. The minimum is a
// parameter rather than a constant: observed deployments disagree on whether
// it is 1 or 5, so the service config decides.
type DurationBounds struct {
	Min int
	Max int
}

// MaxDurationMinutes is one full day.
const MaxDurationMinutes = 1440

// SanitizeDuration normalizes a raw duration value as it arrives from a text
// field or a JSON body: string, float64, int or nil. It returns the cleaned
// minute count, or ok=false when the input carries no usable value.
//
// Strings are trimmed and stripped down to digits plus a leading minus.
// Fractional numbers are floored. Values below Min are rejected outright;
// values above Max clamp down to Max.
func SanitizeDuration(v any, b DurationBounds) (int, bool) {
	var n int
	switch raw := v.(type) {
	case nil:
		return 0, false
	case string:
		parsed, ok := parseDurationString(raw)
		if !ok {
			return 0, false
		}
		n = parsed
	case float64:
		if math.IsNaN(raw) || math.IsInf(raw, 0) {
			return 0, false
		}
		n = int(math.Floor(raw))
	case int:
		n = raw
	default:
		return 0, false
	}

	if n < b.Min {
		return 0, false
	}
	if n > b.Max {
		return b.Max, true
	}
	return n, true
}

func parseDurationString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
			continue
		}
		if r == '-' && sb.Len() == 0 {
			sb.WriteRune(r)
		}
	}
	cleaned := sb.String()
	if cleaned == "" || cleaned == "-" {
		return 0, false
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsValidDuration is the strict save-gate predicate: the value must already
// be a finite integer number within bounds. Strings never pass; they go
// through SanitizeDuration first.
func IsValidDuration(v any, b DurationBounds) bool {
	switch raw := v.(type) {
	case float64:
		if math.IsNaN(raw) || math.IsInf(raw, 0) || raw != math.Trunc(raw) {
			return false
		}
		n := int(raw)
		return n >= b.Min && n <= b.Max
	case int:
		return raw >= b.Min && raw <= b.Max
	default:
		return false
	}
}
