package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cases := map[string]Time{
			"00:00": {Hour: 0, Minute: 0},
			"09:05": {Hour: 9, Minute: 5},
			"12:30": {Hour: 12, Minute: 30},
			"23:59": {Hour: 23, Minute: 59},
		}
		for in, want := range cases {
			got, err := ParseTime(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("rejects anything but strict HH:mm", func(t *testing.T) {
		for _, in := range []string{"9:00", "24:00", "12:60", "12-30", "", "ab:cd", "120:0", "12:3", " 12:30", "12:30 "} {
			_, err := ParseTime(in)
			assert.ErrorIs(t, err, ErrFormat, "input %q", in)
		}
	})
}

func TestTimeMinutesRoundTrip(t *testing.T) {
	// Round-trip law: every valid HH:mm survives parse -> minutes -> format.
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			s := fmt.Sprintf("%02d:%02d", h, m)
			parsed, err := ParseTime(s)
			require.NoError(t, err)
			assert.Equal(t, s, TimeFromMinutes(parsed.Minutes()).String())
		}
	}
}

func TestTimeFromMinutesClamps(t *testing.T) {
	assert.Equal(t, "00:00", TimeFromMinutes(-10).String())
	assert.Equal(t, "00:00", TimeFromMinutes(0).String())
	assert.Equal(t, "23:59", TimeFromMinutes(1439).String())
	assert.Equal(t, "23:59", TimeFromMinutes(2000).String())
}

func TestCompareTimes(t *testing.T) {
	assert.Equal(t, -1, CompareTimes("09:00", "17:00"))
	assert.Equal(t, 1, CompareTimes("17:00", "09:00"))
	assert.Equal(t, 0, CompareTimes("12:30", "12:30"))

	// Partially entered text never panics the sort; it compares equal.
	assert.Equal(t, 0, CompareTimes("1", "17:00"))
	assert.Equal(t, 0, CompareTimes("09:00", ""))
	assert.Equal(t, 0, CompareTimes("", ""))
}
