package domain

import "time"

type Post struct {
	ID         int
	CourseID   int
	AuthorID   int
	AuthorName string
	Title      string
	Content    string
	Category   string
	Likes      int
	IsLiked    bool
	CreatedAt  time.Time
}

type Comment struct {
	ID              int
	PostID          int
	AuthorID        int
	AuthorName      string
	Content         string
	ParentCommentID *int
	Likes           int
	IsLiked         bool
	CreatedAt       time.Time
}
