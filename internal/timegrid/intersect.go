package timegrid

import (
	"sort"

	"github.com/coursehub/backend/internal/domain"
)

// Intersect computes the slots present in every member set.
//
// Zero sets yield an empty result. Any empty member set makes the whole
// intersection empty: a member with no declared time has no free time. The
// smallest set seeds the scan so work is bounded by the least-available
// member; the result does not depend on input order.
func Intersect(sets []SlotSet) SlotSet {
	result := make(SlotSet)
	if len(sets) == 0 {
		return result
	}

	smallest := 0
	for i, s := range sets {
		if len(s) == 0 {
			return result
		}
		if len(s) < len(sets[smallest]) {
			smallest = i
		}
	}

	for slot := range sets[smallest] {
		shared := true
		for i, s := range sets {
			if i == smallest {
				continue
			}
			if _, ok := s[slot]; !ok {
				shared = false
				break
			}
		}
		if shared {
			result[slot] = struct{}{}
		}
	}

	return result
}

// Popularity counts, per slot, how many member sets contain it. Independent
// of the intersection: useful for "closest to everyone free" displays even
// when the strict intersection is empty.
func Popularity(sets []SlotSet) map[domain.Slot]int {
	counts := make(map[domain.Slot]int)
	for _, s := range sets {
		for slot := range s {
			counts[slot]++
		}
	}
	return counts
}

// Decode compresses a slot set into per-day contiguous blocks keyed by the
// canonical day name. Minutes on each day are sorted and merged into maximal
// runs stepping by exactly one granularity unit; a run's block ends one
// granularity unit after its last slot. Days with no slots get no key.
func Decode(set SlotSet, granularity int) map[string][]domain.TimeBlock {
	blocks := make(map[string][]domain.TimeBlock)
	if granularity <= 0 {
		return blocks
	}

	byDay := make(map[int][]int)
	for slot := range set {
		byDay[slot.Day] = append(byDay[slot.Day], slot.Minute)
	}

	for day, minutes := range byDay {
		sort.Ints(minutes)

		start := minutes[0]
		prev := minutes[0]
		for _, m := range minutes[1:] {
			if m == prev {
				continue
			}
			if m == prev+granularity {
				prev = m
				continue
			}
			blocks[DayName(day)] = append(blocks[DayName(day)], domain.TimeBlock{
				StartMinute: start,
				EndMinute:   prev + granularity,
			})
			start, prev = m, m
		}
		blocks[DayName(day)] = append(blocks[DayName(day)], domain.TimeBlock{
			StartMinute: start,
			EndMinute:   prev + granularity,
		})
	}

	return blocks
}

// SortedSlots returns the set ordered by day then minute.
func SortedSlots(set SlotSet) []domain.Slot {
	slots := make([]domain.Slot, 0, len(set))
	for slot := range set {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Day != slots[j].Day {
			return slots[i].Day < slots[j].Day
		}
		return slots[i].Minute < slots[j].Minute
	})
	return slots
}
