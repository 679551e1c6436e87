package domain

import "time"

// AvailabilityInterval is one contiguous window during which a user is free on
// a given weekday. Times are minutes from midnight, StartMinute < EndMinute.
// Intervals are immutable: edits are delete + recreate.
type AvailabilityInterval struct {
	ID          int
	UserID      int
	DayOfWeek   string
	StartMinute int
	EndMinute   int
	CreatedAt   time.Time
}

// Slot is a derived atomic unit of time: a (day index, minute of day) pair
// aligned to the configured granularity. Slots are never persisted.
type Slot struct {
	Day    int
	Minute int
}

// TimeBlock is a contiguous run of slots decoded back into a readable range.
// EndMinute is exclusive.
type TimeBlock struct {
	StartMinute int
	EndMinute   int
}

// MemberAvailability is one team member's contribution to a snapshot.
// StudentID is masked for non-student roles before it reaches the caller.
type MemberAvailability struct {
	UserID    int
	Name      string
	StudentID string
	Role      Role
	Intervals []*AvailabilityInterval
}

// TeamAvailability is the transient result of one common-availability query.
type TeamAvailability struct {
	TeamID      int
	TeamSize    int
	Members     []MemberAvailability
	Slots       []Slot
	DailyBlocks map[string][]TimeBlock
	Popularity  map[Slot]int
}
