package domain

import "time"

// Recruitment is a team-recruitment listing for a course. A listing's joined
// members are the team used by the common-availability query.
type Recruitment struct {
	ID          int
	CourseID    int
	AuthorID    int
	AuthorName  string
	Title       string
	Description string
	MaxMembers  int
	MemberCount int
	IsMember    bool
	CreatedAt   time.Time
}

type RecruitmentMember struct {
	RecruitmentID int
	UserID        int
	JoinedAt      time.Time
}
