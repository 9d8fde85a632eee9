package schedule

// Overlaps reports whether two slots intersect with nonzero measure.
// Slots that merely touch (a.End == b.Start) do not overlap, so a day can be
// tiled edge to edge. Containment and identity both count as overlap. Slots
// with unparseable endpoints never overlap anything; format problems are the
// Validator's job, not this one's.
func Overlaps(a, b Slot) bool {
	aStart, err := ParseTime(a.Start)
	if err != nil {
		return false
	}
	aEnd, err := ParseTime(a.End)
	if err != nil {
		return false
	}
	bStart, err := ParseTime(b.Start)
	if err != nil {
		return false
	}
	bEnd, err := ParseTime(b.End)
	if err != nil {
		return false
	}
	return aStart.Minutes() < bEnd.Minutes() && bStart.Minutes() < aEnd.Minutes()
}

// CanAddWithoutOverlap checks a candidate against every existing slot and
// returns the first conflicting slot, if any.
func CanAddWithoutOverlap(existing []Slot, candidate Slot) (Slot, bool) {
	for _, s := range existing {
		if Overlaps(s, candidate) {
			return s, false
		}
	}
	return Slot{}, true
}

// FindOverlapping returns every existing slot that strictly overlaps target,
// in original order.
func FindOverlapping(existing []Slot, target Slot) []Slot {
	var out []Slot
	for _, s := range existing {
		if Overlaps(s, target) {
			out = append(out, s)
		}
	}
	return out
}
