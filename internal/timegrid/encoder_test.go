package timegrid

import (
	"testing"

	"github.com/coursehub/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(day string, start, end int) *domain.AvailabilityInterval {
	return &domain.AvailabilityInterval{DayOfWeek: day, StartMinute: start, EndMinute: end}
}

func TestEncode(t *testing.T) {
	t.Run("empty input yields empty set", func(t *testing.T) {
		set := Encode(nil, 30)
		assert.Empty(t, set)
	})

	t.Run("two hour window yields four slots", func(t *testing.T) {
		set := Encode([]*domain.AvailabilityInterval{interval("Monday", 9*60, 11*60)}, 30)

		require.Len(t, set, 4)
		for _, m := range []int{540, 570, 600, 630} {
			assert.Contains(t, set, domain.Slot{Day: 0, Minute: m})
		}
	})

	t.Run("partial granularity unit is dropped", func(t *testing.T) {
		// [09:00, 09:29) does not cover a full slot.
		set := Encode([]*domain.AvailabilityInterval{interval("Monday", 540, 569)}, 30)
		assert.Empty(t, set)

		// [09:00, 09:30) covers exactly one.
		set = Encode([]*domain.AvailabilityInterval{interval("Monday", 540, 570)}, 30)
		require.Len(t, set, 1)
		assert.Contains(t, set, domain.Slot{Day: 0, Minute: 540})
	})

	t.Run("unknown weekday contributes nothing", func(t *testing.T) {
		set := Encode([]*domain.AvailabilityInterval{
			interval("Funday", 540, 600),
			interval("Tuesday", 540, 600),
		}, 30)

		require.Len(t, set, 2)
		assert.Contains(t, set, domain.Slot{Day: 1, Minute: 540})
		assert.Contains(t, set, domain.Slot{Day: 1, Minute: 570})
	})

	t.Run("weekday lookup is case-insensitive", func(t *testing.T) {
		set := Encode([]*domain.AvailabilityInterval{interval("monday", 540, 570)}, 30)
		assert.Contains(t, set, domain.Slot{Day: 0, Minute: 540})
	})

	t.Run("inverted interval contributes nothing", func(t *testing.T) {
		set := Encode([]*domain.AvailabilityInterval{interval("Monday", 600, 540)}, 30)
		assert.Empty(t, set)
	})

	t.Run("no slots reach past midnight", func(t *testing.T) {
		// 23:30-24:30 keeps only the 23:30 slot; nothing wraps.
		set := Encode([]*domain.AvailabilityInterval{interval("Sunday", 1410, 1470)}, 30)

		require.Len(t, set, 1)
		assert.Contains(t, set, domain.Slot{Day: 6, Minute: 1410})

		// 23:45 cannot fit a full slot before midnight.
		set = Encode([]*domain.AvailabilityInterval{interval("Sunday", 1425, 1470)}, 30)
		assert.Empty(t, set)
	})

	t.Run("overlapping intervals deduplicate", func(t *testing.T) {
		set := Encode([]*domain.AvailabilityInterval{
			interval("Monday", 540, 630),
			interval("Monday", 570, 660),
		}, 30)

		assert.Len(t, set, 4)
	})
}

func TestParseFormatMinute(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		for _, s := range []string{"00:00", "09:05", "14:30", "23:59"} {
			m, err := ParseMinute(s)
			require.NoError(t, err)
			assert.Equal(t, s, FormatMinute(m))
		}
	})

	t.Run("rejects out of range", func(t *testing.T) {
		for _, s := range []string{"24:00", "12:60", "-1:00", "nope"} {
			_, err := ParseMinute(s)
			assert.Error(t, err, s)
		}
	})
}

func TestDayIndex(t *testing.T) {
	idx, ok := DayIndex("Sunday")
	require.True(t, ok)
	assert.Equal(t, 6, idx)

	_, ok = DayIndex("Someday")
	assert.False(t, ok)

	assert.Equal(t, "Wednesday", DayName(2))
	assert.Equal(t, "", DayName(7))
}
