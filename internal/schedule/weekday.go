package schedule

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Weekday is one of the 7 lowercase day keys used in the persisted schedule.
type Weekday string

const (
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// Weekdays is the canonical display order, Saturday first. Saturday is also
// the conventional source day for the apply-to-all broadcast.
var Weekdays = [7]Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Weekdays {
		if s == string(d) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// WeeklySchedule maps every weekday to its slot list. All 7 keys are always
// present; construct through NewWeeklySchedule or Clone to keep it that way.
type WeeklySchedule map[Weekday][]Slot

func NewWeeklySchedule() WeeklySchedule {
	ws := make(WeeklySchedule, len(Weekdays))
	for _, d := range Weekdays {
		ws[d] = []Slot{}
	}
	return ws
}

// Clone returns a deep copy. Mutating the copy never affects the original,
// which is what lets the owning layer keep snapshots for rollback.
func (ws WeeklySchedule) Clone() WeeklySchedule {
	out := make(WeeklySchedule, len(Weekdays))
	for _, d := range Weekdays {
		out[d] = append([]Slot{}, ws[d]...)
	}
	return out
}

// MarshalJSON writes all 7 keys in canonical Saturday-first order with empty
// days as [] rather than null.
func (ws WeeklySchedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range Weekdays {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(d))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		slots := ws[d]
		if slots == nil {
			slots = []Slot{}
		}
		val, err := json.Marshal(slots)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (ws *WeeklySchedule) UnmarshalJSON(b []byte) error {
	raw := map[string][]Slot{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := NewWeeklySchedule()
	for k, slots := range raw {
		d, err := ParseWeekday(k)
		if err != nil {
			return err
		}
		if slots != nil {
			out[d] = slots
		}
	}
	*ws = out
	return nil
}
