package domain

import "time"

type ScheduleEntry struct {
	ID        int
	UserID    int
	TeamID    *int
	Title     string
	Date      string
	StartTime string
	EndTime   string
	CreatedAt time.Time
}
