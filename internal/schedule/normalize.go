package schedule

import "sort"

// Normalize sorts a day's slots ascending by start time and drops exact
// duplicates. The result is a fresh slice; the input is never touched.
// Normalize is idempotent and safe on not-yet-validated input: entries that
// do not parse keep their relative position (they compare as equal) and the
// format gate in the Validator deals with them later.
func Normalize(slots []Slot) []Slot {
	out := append([]Slot{}, slots...)
	sort.SliceStable(out, func(i, j int) bool {
		return CompareTimes(out[i].Start, out[j].Start) < 0
	})

	seen := make(map[Slot]struct{}, len(out))
	deduped := out[:0]
	for _, s := range out {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		deduped = append(deduped, s)
	}
	return deduped
}

// NormalizeWeek normalizes every day of a schedule into a new schedule.
func NormalizeWeek(ws WeeklySchedule) WeeklySchedule {
	out := make(WeeklySchedule, len(Weekdays))
	for _, d := range Weekdays {
		out[d] = Normalize(ws[d])
	}
	return out
}
