package timegrid

import (
	"fmt"

	"github.com/coursehub/backend/internal/domain"
)

// SlotSet is a deduplicated set of slots. No defined ordering; callers that
// need order use SortedSlots.
type SlotSet map[domain.Slot]struct{}

// Encode discretizes availability intervals into the covering slot set.
//
// A slot is emitted at start, start+granularity, ... while the full
// granularity unit still fits inside the interval; a partial tail unit is
// dropped. Intervals with start >= end, an unrecognized weekday, or any part
// reaching past midnight contribute nothing rather than failing — bad
// historical rows must not poison a whole team query.
func Encode(intervals []*domain.AvailabilityInterval, granularity int) SlotSet {
	set := make(SlotSet)
	if granularity <= 0 {
		return set
	}

	for _, iv := range intervals {
		day, ok := DayIndex(iv.DayOfWeek)
		if !ok {
			continue
		}
		if iv.StartMinute >= iv.EndMinute || iv.StartMinute < 0 {
			continue
		}

		end := iv.EndMinute
		if end > MinutesPerDay {
			end = MinutesPerDay
		}
		for m := iv.StartMinute; m+granularity <= end; m += granularity {
			set[domain.Slot{Day: day, Minute: m}] = struct{}{}
		}
	}

	return set
}

// FormatMinute renders a minute-of-day as "HH:MM".
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseMinute parses "HH:MM" into a minute-of-day in [0, 1440).
func ParseMinute(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return h*60 + m, nil
}
