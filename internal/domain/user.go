package domain

import "time"

type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

type User struct {
	ID           int
	StudentID    string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
