package timegrid

import (
	"testing"

	"github.com/coursehub/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeOne(t *testing.T, day string, start, end int) SlotSet {
	t.Helper()
	return Encode([]*domain.AvailabilityInterval{interval(day, start, end)}, 30)
}

func TestIntersect(t *testing.T) {
	t.Run("no sets yields empty", func(t *testing.T) {
		assert.Empty(t, Intersect(nil))
	})

	t.Run("one empty member empties the whole intersection", func(t *testing.T) {
		big := encodeOne(t, "Monday", 0, 1440)
		assert.Empty(t, Intersect([]SlotSet{big, {}}))
		assert.Empty(t, Intersect([]SlotSet{{}, big, big}))
	})

	t.Run("overlapping hours intersect to the shared window", func(t *testing.T) {
		// Member1 Mon 09:00-11:00, Member2 Mon 10:00-12:00 -> Mon 10:00-11:00.
		m1 := encodeOne(t, "Monday", 9*60, 11*60)
		m2 := encodeOne(t, "Monday", 10*60, 12*60)

		got := Intersect([]SlotSet{m1, m2})

		require.Len(t, got, 2)
		assert.Contains(t, got, domain.Slot{Day: 0, Minute: 600})
		assert.Contains(t, got, domain.Slot{Day: 0, Minute: 630})
	})

	t.Run("result is independent of member order", func(t *testing.T) {
		a := encodeOne(t, "Monday", 540, 720)
		b := encodeOne(t, "Monday", 600, 780)
		c := encodeOne(t, "Monday", 570, 660)

		forward := Intersect([]SlotSet{a, b, c})
		backward := Intersect([]SlotSet{c, b, a})
		shuffled := Intersect([]SlotSet{b, c, a})

		assert.Equal(t, forward, backward)
		assert.Equal(t, forward, shuffled)
	})

	t.Run("disjoint days do not intersect", func(t *testing.T) {
		m1 := encodeOne(t, "Monday", 540, 600)
		m2 := encodeOne(t, "Tuesday", 540, 600)
		assert.Empty(t, Intersect([]SlotSet{m1, m2}))
	})

	t.Run("single member intersects to itself", func(t *testing.T) {
		m := encodeOne(t, "Friday", 540, 660)
		assert.Equal(t, m, Intersect([]SlotSet{m}))
	})
}

func TestPopularity(t *testing.T) {
	t.Run("counts members per slot across all sets", func(t *testing.T) {
		// Three members free Tue 14:00-15:00, one also free Tue 15:00-16:00.
		sets := []SlotSet{
			encodeOne(t, "Tuesday", 14*60, 15*60),
			encodeOne(t, "Tuesday", 14*60, 15*60),
			encodeOne(t, "Tuesday", 14*60, 16*60),
		}

		counts := Popularity(sets)

		assert.Equal(t, 3, counts[domain.Slot{Day: 1, Minute: 840}])
		assert.Equal(t, 3, counts[domain.Slot{Day: 1, Minute: 870}])
		assert.Equal(t, 1, counts[domain.Slot{Day: 1, Minute: 900}])
	})

	t.Run("survives empty intersection", func(t *testing.T) {
		sets := []SlotSet{encodeOne(t, "Monday", 540, 600), {}}
		counts := Popularity(sets)
		assert.Equal(t, 1, counts[domain.Slot{Day: 0, Minute: 540}])
	})
}

func TestDecode(t *testing.T) {
	t.Run("merges consecutive slots into one block", func(t *testing.T) {
		set := encodeOne(t, "Monday", 10*60, 11*60)

		blocks := Decode(set, 30)

		require.Len(t, blocks, 1)
		require.Len(t, blocks["Monday"], 1)
		assert.Equal(t, domain.TimeBlock{StartMinute: 600, EndMinute: 660}, blocks["Monday"][0])
	})

	t.Run("gap splits into separate blocks", func(t *testing.T) {
		set := Encode([]*domain.AvailabilityInterval{
			interval("Wednesday", 540, 600),
			interval("Wednesday", 660, 720),
		}, 30)

		blocks := Decode(set, 30)

		require.Len(t, blocks["Wednesday"], 2)
		assert.Equal(t, domain.TimeBlock{StartMinute: 540, EndMinute: 600}, blocks["Wednesday"][0])
		assert.Equal(t, domain.TimeBlock{StartMinute: 660, EndMinute: 720}, blocks["Wednesday"][1])
	})

	t.Run("days without slots are absent keys", func(t *testing.T) {
		set := encodeOne(t, "Monday", 540, 600)

		blocks := Decode(set, 30)

		_, ok := blocks["Tuesday"]
		assert.False(t, ok)
		assert.Len(t, blocks, 1)
	})

	t.Run("empty set decodes to empty map", func(t *testing.T) {
		assert.Empty(t, Decode(SlotSet{}, 30))
	})
}

// Decoded blocks, re-encoded through the encoder, must reproduce the exact
// intersected slot set.
func TestDecodeEncodeRoundTrip(t *testing.T) {
	sets := []SlotSet{
		Encode([]*domain.AvailabilityInterval{
			interval("Monday", 540, 720),
			interval("Tuesday", 600, 690),
			interval("Friday", 1380, 1440),
		}, 30),
		Encode([]*domain.AvailabilityInterval{
			interval("Monday", 600, 780),
			interval("Tuesday", 540, 660),
			interval("Friday", 1290, 1440),
		}, 30),
	}

	intersection := Intersect(sets)
	require.NotEmpty(t, intersection)

	blocks := Decode(intersection, 30)

	var reencoded []*domain.AvailabilityInterval
	for day, dayBlocks := range blocks {
		for _, b := range dayBlocks {
			reencoded = append(reencoded, interval(day, b.StartMinute, b.EndMinute))
		}
	}

	assert.Equal(t, intersection, Encode(reencoded, 30))
}

func TestSortedSlots(t *testing.T) {
	set := Encode([]*domain.AvailabilityInterval{
		interval("Tuesday", 540, 600),
		interval("Monday", 600, 660),
	}, 30)

	slots := SortedSlots(set)

	require.Len(t, slots, 4)
	assert.Equal(t, domain.Slot{Day: 0, Minute: 600}, slots[0])
	assert.Equal(t, domain.Slot{Day: 0, Minute: 630}, slots[1])
	assert.Equal(t, domain.Slot{Day: 1, Minute: 540}, slots[2])
	assert.Equal(t, domain.Slot{Day: 1, Minute: 570}, slots[3])
}
