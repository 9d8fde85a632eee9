package schedule

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Slot is one reservation window within a day. Start and End hold the raw
// "HH:mm" strings as entered; while a settings form is open either field may
// be a partial value, so validity is a separate question (see Validator).
type Slot struct {
	Start string
	End   string
}

// NewSlot returns the default slot appended by the editor.
func NewSlot() Slot {
	return Slot{Start: DefaultSlotStart, End: DefaultSlotEnd}
}

// Valid reports whether both endpoints parse and Start is strictly before End
// within the same day.
func (s Slot) Valid() bool {
	start, err := ParseTime(s.Start)
	if err != nil {
		return false
	}
	end, err := ParseTime(s.End)
	if err != nil {
		return false
	}
	return start.Minutes() < end.Minutes()
}

func (s Slot) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Slots persist and travel as 2-element string tuples: ["09:00","17:00"].

func (s Slot) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{s.Start, s.End})
}

func (s *Slot) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("slot must be a [start, end] pair, got %d elements", len(pair))
	}
	s.Start, s.End = pair[0], pair[1]
	return nil
}
