package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDay(t *testing.T) {
	v := DefaultValidator

	t.Run("empty day is valid", func(t *testing.T) {
		res := v.ValidateDay(Monday, nil)
		assert.True(t, res.OK)
		assert.Empty(t, res.Errors)
	})

	t.Run("well formed day", func(t *testing.T) {
		res := v.ValidateDay(Monday, []Slot{{"09:00", "12:00"}, {"12:00", "15:00"}, {"15:00", "18:00"}})
		assert.True(t, res.OK)
	})

	t.Run("format beats everything", func(t *testing.T) {
		res := v.ValidateDay(Monday, []Slot{{"9:00", "08:00"}})
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "format", res.Errors[0].Kind.Key())
	})

	t.Run("end before start", func(t *testing.T) {
		res := v.ValidateDay(Monday, []Slot{{"17:00", "09:00"}})
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "order", res.Errors[0].Kind.Key())
	})

	t.Run("zero duration fails ordering", func(t *testing.T) {
		res := v.ValidateDay(Monday, []Slot{{"09:00", "09:00"}})
		require.Len(t, res.Errors, 1)
		assert.Equal(t, KindOrder, res.Errors[0].Kind)
	})

	t.Run("publish path reports overnightNotSupported for the same condition", func(t *testing.T) {
		res := PublishValidator.ValidateDay(Monday, []Slot{{"17:00", "09:00"}})
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "overnightNotSupported", res.Errors[0].Kind.Key())
	})

	t.Run("overlap reported on both slots", func(t *testing.T) {
		res := v.ValidateDay(Monday, []Slot{{"09:00", "12:00"}, {"11:00", "14:00"}})
		assert.False(t, res.OK)
		assert.Equal(t, []string{"overlap", "overlap"}, res.Codes())
	})

	t.Run("capacity boundary", func(t *testing.T) {
		three := []Slot{{"08:00", "10:00"}, {"10:00", "12:00"}, {"12:00", "14:00"}}
		assert.True(t, v.ValidateDay(Monday, three).OK)

		four := append(append([]Slot{}, three...), Slot{"14:00", "16:00"})
		res := v.ValidateDay(Monday, four)
		assert.False(t, res.OK)
		assert.Contains(t, res.Codes(), "max")
	})

	t.Run("accumulates across slots", func(t *testing.T) {
		res := v.ValidateDay(Monday, []Slot{{"bad", "10:00"}, {"12:00", "11:00"}, {"13:00", "15:00"}, {"14:00", "16:00"}})
		assert.False(t, res.OK)
		assert.Equal(t, []string{"format", "order", "overlap", "overlap"}, res.Codes())
		assert.Equal(t, 0, res.Errors[0].Index)
		assert.Equal(t, Monday, res.Errors[0].Day)
	})
}

func TestCanAddSlot(t *testing.T) {
	assert.True(t, CanAddSlot(nil))
	assert.True(t, CanAddSlot(make([]Slot, MaxSlotsPerDay-1)))
	assert.False(t, CanAddSlot(make([]Slot, MaxSlotsPerDay)))
}

func TestValidateWeek(t *testing.T) {
	ws := NewWeeklySchedule()
	ok, results := DefaultValidator.ValidateWeek(ws)
	assert.True(t, ok)
	assert.Len(t, results, 7)

	ws[Tuesday] = []Slot{{"12:00", "09:00"}}
	ok, results = DefaultValidator.ValidateWeek(ws)
	assert.False(t, ok, "one bad day invalidates the week")
	assert.False(t, results[Tuesday].OK)
	assert.True(t, results[Monday].OK)
	assert.False(t, Valid(ws))
}
