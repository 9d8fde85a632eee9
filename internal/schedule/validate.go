package schedule

import "fmt"

// MaxSlotsPerDay bounds how many reservation windows a single day may hold.
const MaxSlotsPerDay = 3

// Kind classifies a slot validation failure.
type Kind int

const (
	KindFormat Kind = iota
	KindOrder
	KindOverlap
	KindCapacity
	KindOvernight
)

// Key returns the opaque string code the API emits for this kind. Callers map
// these to user-facing copy; the engine never produces localized text.
func (k Kind) Key() string {
	switch k {
	case KindFormat:
		return "format"
	case KindOrder:
		return "order"
	case KindOverlap:
		return "overlap"
	case KindCapacity:
		return "max"
	case KindOvernight:
		return "overnightNotSupported"
	default:
		return "unknown"
	}
}

// SlotError is one failed check on one slot.
type SlotError struct {
	Day   Weekday
	Index int
	Kind  Kind
}

func (e SlotError) Error() string {
	return fmt.Sprintf("%s slot %d: %s", e.Day, e.Index, e.Kind.Key())
}

// DayResult is the outcome of validating one day's slot list.
type DayResult struct {
	OK     bool
	Errors []SlotError
}

// Codes returns the error keys in order, for the boundary layer.
func (r DayResult) Codes() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Kind.Key()
	}
	return out
}

// Validator applies the per-slot policy checks. RangeKind is the kind
// reported when end <= start: the live editing path reports KindOrder while
// the publish path reports KindOvernight. Both codes exist in the wild for
// the same condition, so which one a call site gets is its own choice.
type Validator struct {
	RangeKind Kind
}

// DefaultValidator reports ordering problems as "order".
var DefaultValidator = Validator{RangeKind: KindOrder}

// PublishValidator reports the same condition as "overnightNotSupported".
var PublishValidator = Validator{RangeKind: KindOvernight}

// ValidateDay checks every slot of one day and accumulates all failures.
// Checks run in priority order per slot (format, then order, then overlap,
// then capacity) and the first failing check wins for that slot. An empty
// day is valid.
func (v Validator) ValidateDay(day Weekday, slots []Slot) DayResult {
	res := DayResult{OK: true}
	for i, s := range slots {
		if kind, bad := v.checkSlot(slots, i, s); bad {
			res.OK = false
			res.Errors = append(res.Errors, SlotError{Day: day, Index: i, Kind: kind})
		}
	}
	return res
}

func (v Validator) checkSlot(slots []Slot, index int, s Slot) (Kind, bool) {
	if _, err := ParseTime(s.Start); err != nil {
		return KindFormat, true
	}
	if _, err := ParseTime(s.End); err != nil {
		return KindFormat, true
	}
	if CompareTimes(s.End, s.Start) <= 0 {
		return v.rangeKind(), true
	}
	for j, other := range slots {
		if j == index {
			continue
		}
		if Overlaps(s, other) {
			return KindOverlap, true
		}
	}
	if index >= MaxSlotsPerDay {
		return KindCapacity, true
	}
	return 0, false
}

func (v Validator) rangeKind() Kind {
	if v.RangeKind == KindOvernight {
		return KindOvernight
	}
	return KindOrder
}

// CanAddSlot reports whether a day has room for one more slot.
func CanAddSlot(slots []Slot) bool {
	return len(slots) < MaxSlotsPerDay
}

// ValidateWeek validates each of the 7 days independently. The schedule as a
// whole is valid iff every day is.
func (v Validator) ValidateWeek(ws WeeklySchedule) (bool, map[Weekday]DayResult) {
	ok := true
	out := make(map[Weekday]DayResult, len(Weekdays))
	for _, d := range Weekdays {
		r := v.ValidateDay(d, ws[d])
		if !r.OK {
			ok = false
		}
		out[d] = r
	}
	return ok, out
}

// Valid is the whole-week predicate recomputed after every edit.
func Valid(ws WeeklySchedule) bool {
	ok, _ := DefaultValidator.ValidateWeek(ws)
	return ok
}
