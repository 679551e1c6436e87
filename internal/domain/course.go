package domain

import "time"

type Course struct {
	ID          int
	Title       string
	Code        string
	ProfessorID int
	CreatedAt   time.Time
}

type Enrollment struct {
	ID         int
	StudentID  int
	CourseID   int
	EnrolledAt time.Time
}
