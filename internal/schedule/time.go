package schedule

import (
	"errors"
	"fmt"
)

// Time is a wall-clock time of day, no date and no timezone.
type Time struct {
	Hour   int
	Minute int
}

var ErrFormat = errors.New("invalid time format")

const minutesPerDay = 24 * 60

// ParseTime accepts strict zero-padded 24-hour "HH:mm" and nothing else.
// "9:00", "24:00" and "12:60" are all format errors.
func ParseTime(s string) (Time, error) {
	if len(s) != 5 || s[2] != ':' {
		return Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	h, ok1 := twoDigits(s[0], s[1])
	m, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return Time{Hour: h, Minute: m}, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// Minutes returns the total minutes since midnight, in [0, 1439].
func (t Time) Minutes() int {
	return t.Hour*60 + t.Minute
}

// TimeFromMinutes converts total minutes back to a Time, clamping out-of-range
// input to the nearest representable value (00:00 or 23:59).
func TimeFromMinutes(n int) Time {
	if n < 0 {
		n = 0
	}
	if n > minutesPerDay-1 {
		n = minutesPerDay - 1
	}
	return Time{Hour: n / 60, Minute: n % 60}
}

// String formats the time as zero-padded "HH:mm".
func (t Time) String() string {
	return FormatTime(t.Hour, t.Minute)
}

func FormatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// CompareTimes orders two raw "HH:mm" strings by minutes since midnight,
// returning -1, 0 or 1. Inputs that do not parse compare as equal; the editor
// sorts while the user is still typing, so a half-entered value must not blow
// up the comparison.
func CompareTimes(a, b string) int {
	ta, errA := ParseTime(a)
	tb, errB := ParseTime(b)
	if errA != nil || errB != nil {
		return 0
	}
	switch {
	case ta.Minutes() < tb.Minutes():
		return -1
	case ta.Minutes() > tb.Minutes():
		return 1
	default:
		return 0
	}
}
