package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSlot(t *testing.T) {
	ws := NewWeeklySchedule()

	got := AddSlot(ws, Monday)
	require.Len(t, got[Monday], 1)
	assert.Equal(t, Slot{"09:00", "17:00"}, got[Monday][0])
	assert.Empty(t, ws[Monday], "input schedule untouched")

	// fill to capacity
	got = AddSlot(AddSlot(got, Monday), Monday)
	require.Len(t, got[Monday], MaxSlotsPerDay)

	full := AddSlot(got, Monday)
	assert.Len(t, full[Monday], MaxSlotsPerDay, "add at capacity is a no-op")
}

func TestRemoveSlot(t *testing.T) {
	ws := NewWeeklySchedule()
	ws[Friday] = []Slot{{"09:00", "10:00"}, {"11:00", "12:00"}, {"13:00", "14:00"}}

	got := RemoveSlot(ws, Friday, 1)
	assert.Equal(t, []Slot{{"09:00", "10:00"}, {"13:00", "14:00"}}, got[Friday])
	assert.Len(t, ws[Friday], 3)

	assert.Equal(t, ws, RemoveSlot(ws, Friday, 3), "out of range is a no-op")
	assert.Equal(t, ws, RemoveSlot(ws, Friday, -1))
}

func TestUpdateSlot(t *testing.T) {
	ws := NewWeeklySchedule()
	ws[Sunday] = []Slot{{"09:00", "17:00"}}

	got := UpdateSlot(ws, Sunday, 0, FieldStart, "10:3")
	assert.Equal(t, Slot{"10:3", "17:00"}, got[Sunday][0], "raw intermediate text is held verbatim")
	assert.Equal(t, Slot{"09:00", "17:00"}, ws[Sunday][0])

	got = UpdateSlot(got, Sunday, 0, FieldEnd, "18:00")
	assert.Equal(t, Slot{"10:3", "18:00"}, got[Sunday][0])

	assert.Equal(t, ws, UpdateSlot(ws, Sunday, 5, FieldStart, "10:00"), "missing slot is a no-op")
	assert.Equal(t, ws, UpdateSlot(ws, Sunday, 0, Field("middle"), "10:00"), "unknown field is a no-op")
}

func TestBroadcast(t *testing.T) {
	ws := NewWeeklySchedule()
	ws[Saturday] = []Slot{{"09:00", "12:00"}, {"14:00", "17:00"}}

	got := Broadcast(ws, Saturday)
	for _, d := range Weekdays {
		assert.Equal(t, []Slot{{"09:00", "12:00"}, {"14:00", "17:00"}}, got[d], d)
	}

	// each day's list is an independent clone
	got[Monday][0].Start = "08:00"
	assert.Equal(t, "09:00", got[Tuesday][0].Start)
	assert.Equal(t, "09:00", ws[Saturday][0].Start)
}

func TestEditorApplyToAllDays(t *testing.T) {
	ws := NewWeeklySchedule()
	ws[Saturday] = []Slot{{"09:00", "12:00"}}

	t.Run("confirmed", func(t *testing.T) {
		e := Editor{Confirm: func(context.Context) (bool, error) { return true, nil }}
		got, applied, err := e.ApplyToAllDays(context.Background(), ws, Saturday)
		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, []Slot{{"09:00", "12:00"}}, got[Wednesday])
	})

	t.Run("refused leaves the schedule untouched", func(t *testing.T) {
		e := Editor{Confirm: func(context.Context) (bool, error) { return false, nil }}
		got, applied, err := e.ApplyToAllDays(context.Background(), ws, Saturday)
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Empty(t, got[Wednesday])
	})

	t.Run("confirm error propagates", func(t *testing.T) {
		boom := errors.New("dialog torn down")
		e := Editor{Confirm: func(context.Context) (bool, error) { return false, boom }}
		_, applied, err := e.ApplyToAllDays(context.Background(), ws, Saturday)
		assert.ErrorIs(t, err, boom)
		assert.False(t, applied)
	})

	t.Run("no capability wired", func(t *testing.T) {
		got, applied, err := Editor{}.ApplyToAllDays(context.Background(), ws, Saturday)
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Empty(t, got[Wednesday])
	})
}
