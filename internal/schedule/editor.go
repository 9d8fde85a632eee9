package schedule

import "context"

// Default slot appended by AddSlot.
const (
	DefaultSlotStart = "09:00"
	DefaultSlotEnd   = "17:00"
)

// Field names one endpoint of a slot.
type Field string

const (
	FieldStart Field = "start"
	FieldEnd   Field = "end"
)

// The editor functions are pure: each returns a new schedule and never
// mutates its argument, so the owning layer can keep the previous value
// around for optimistic-update rollback.

// AddSlot appends the default slot to day if the day has room. At capacity it
// returns the input unchanged.
func AddSlot(ws WeeklySchedule, day Weekday) WeeklySchedule {
	if !CanAddSlot(ws[day]) {
		return ws
	}
	out := ws.Clone()
	out[day] = append(out[day], NewSlot())
	return out
}

// RemoveSlot drops the slot at index. Out-of-range indexes are a no-op.
func RemoveSlot(ws WeeklySchedule, day Weekday, index int) WeeklySchedule {
	slots := ws[day]
	if index < 0 || index >= len(slots) {
		return ws
	}
	out := ws.Clone()
	out[day] = append(append([]Slot{}, slots[:index]...), slots[index+1:]...)
	return out
}

// UpdateSlot replaces one endpoint of the slot at index with the raw value as
// typed. Validation is deferred so the schedule can hold an intermediate,
// possibly invalid string mid-edit. Unknown index or field is a no-op.
func UpdateSlot(ws WeeklySchedule, day Weekday, index int, field Field, value string) WeeklySchedule {
	slots := ws[day]
	if index < 0 || index >= len(slots) {
		return ws
	}
	out := ws.Clone()
	switch field {
	case FieldStart:
		out[day][index].Start = value
	case FieldEnd:
		out[day][index].End = value
	default:
		return ws
	}
	return out
}

// Broadcast overwrites every day's slot list with an independent copy of the
// source day's list. Copying onto the source day itself changes nothing.
func Broadcast(ws WeeklySchedule, source Weekday) WeeklySchedule {
	src := ws[source]
	out := make(WeeklySchedule, len(Weekdays))
	for _, d := range Weekdays {
		out[d] = append([]Slot{}, src...)
	}
	return out
}

// ConfirmFunc is the injected yes/no capability gating destructive edits.
// It is the only asynchronous boundary in this package.
type ConfirmFunc func(ctx context.Context) (bool, error)

// Editor wires the confirmation capability to the broadcast operation.
type Editor struct {
	Confirm ConfirmFunc
}

// ApplyToAllDays asks for confirmation and, if granted, broadcasts the source
// day everywhere. On refusal (or with no capability wired) the input schedule
// is returned untouched and applied is false.
func (e Editor) ApplyToAllDays(ctx context.Context, ws WeeklySchedule, source Weekday) (WeeklySchedule, bool, error) {
	if e.Confirm == nil {
		return ws, false, nil
	}
	ok, err := e.Confirm(ctx)
	if err != nil {
		return ws, false, err
	}
	if !ok {
		return ws, false, nil
	}
	return Broadcast(ws, source), true, nil
}
