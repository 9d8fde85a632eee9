package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("sorts by start and dedupes", func(t *testing.T) {
		in := []Slot{
			{"14:00", "17:00"},
			{"09:00", "12:00"},
			{"14:00", "17:00"},
			{"12:00", "13:00"},
		}
		got := Normalize(in)
		assert.Equal(t, []Slot{{"09:00", "12:00"}, {"12:00", "13:00"}, {"14:00", "17:00"}}, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		in := []Slot{{"15:00", "16:00"}, {"09:00", "10:00"}, {"09:00", "10:00"}}
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	})

	t.Run("never aliases the input", func(t *testing.T) {
		in := []Slot{{"14:00", "15:00"}, {"09:00", "10:00"}}
		got := Normalize(in)

		got[0].Start = "00:00"
		assert.Equal(t, []Slot{{"14:00", "15:00"}, {"09:00", "10:00"}}, in, "mutating the result must not touch the input")

		in[1].End = "23:00"
		assert.Equal(t, "00:00", got[0].Start)
		assert.Equal(t, "10:00", got[1].End)
	})

	t.Run("tolerates malformed entries", func(t *testing.T) {
		in := []Slot{{"xx", "yy"}, {"09:00", "10:00"}, {"xx", "yy"}}
		got := Normalize(in)
		// dedup still applies; unparseable entries keep relative position
		assert.Len(t, got, 2)
		assert.Contains(t, got, Slot{"xx", "yy"})
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Normalize(nil))
		assert.Empty(t, Normalize([]Slot{}))
	})
}

func TestNormalizeWeek(t *testing.T) {
	ws := NewWeeklySchedule()
	ws[Saturday] = []Slot{{"14:00", "17:00"}, {"09:00", "12:00"}}
	got := NormalizeWeek(ws)
	assert.Equal(t, []Slot{{"09:00", "12:00"}, {"14:00", "17:00"}}, got[Saturday])
	assert.Equal(t, []Slot{{"14:00", "17:00"}, {"09:00", "12:00"}}, ws[Saturday], "input untouched")
}
