package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type CourseService interface {
	CreateCourse(ctx context.Context, professorID int, title, code string) (*domain.Course, error)
	DeleteCourse(ctx context.Context, professorID, courseID int) error
	ListMine(ctx context.Context, professorID int) ([]*domain.Course, error)
	ListAll(ctx context.Context) ([]*domain.Course, error)
	Enroll(ctx context.Context, studentID, courseID int) (*domain.Enrollment, error)
	ListEnrolled(ctx context.Context, studentID int) ([]*domain.Course, error)
}
