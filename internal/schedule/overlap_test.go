package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Slot
		want bool
	}{
		{"disjoint", Slot{"09:00", "11:00"}, Slot{"12:00", "14:00"}, false},
		{"touching is not overlap", Slot{"09:00", "12:00"}, Slot{"12:00", "15:00"}, false},
		{"partial", Slot{"09:00", "12:00"}, Slot{"11:00", "14:00"}, true},
		{"containment is overlap", Slot{"09:00", "18:00"}, Slot{"12:00", "15:00"}, true},
		{"identical", Slot{"09:00", "12:00"}, Slot{"09:00", "12:00"}, true},
		{"one minute shared", Slot{"09:00", "10:01"}, Slot{"10:00", "11:00"}, true},
		{"invalid format never overlaps", Slot{"9:00", "12:00"}, Slot{"09:00", "12:00"}, false},
		{"empty never overlaps", Slot{"", ""}, Slot{"09:00", "12:00"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a, tc.b))
			// symmetry
			assert.Equal(t, Overlaps(tc.a, tc.b), Overlaps(tc.b, tc.a))
		})
	}
}

func TestCanAddWithoutOverlap(t *testing.T) {
	existing := []Slot{{"09:00", "11:00"}, {"13:00", "15:00"}}

	_, ok := CanAddWithoutOverlap(existing, Slot{"11:00", "13:00"})
	assert.True(t, ok, "exactly filling the gap must be allowed")

	conflict, ok := CanAddWithoutOverlap(existing, Slot{"10:00", "12:00"})
	assert.False(t, ok)
	assert.Equal(t, Slot{"09:00", "11:00"}, conflict)

	_, ok = CanAddWithoutOverlap(nil, Slot{"09:00", "17:00"})
	assert.True(t, ok)
}

func TestFindOverlapping(t *testing.T) {
	existing := []Slot{{"09:00", "11:00"}, {"10:30", "12:00"}, {"14:00", "15:00"}}
	got := FindOverlapping(existing, Slot{"10:00", "14:00"})
	assert.Equal(t, []Slot{{"09:00", "11:00"}, {"10:30", "12:00"}}, got)

	assert.Empty(t, FindOverlapping(existing, Slot{"15:00", "16:00"}))
}
