package repository

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	GetByID(ctx context.Context, id int) (*domain.Course, error)
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	Delete(ctx context.Context, id int) error
	ListByProfessor(ctx context.Context, professorID int) ([]*domain.Course, error)
	ListAll(ctx context.Context) ([]*domain.Course, error)

	Enroll(ctx context.Context, enrollment *domain.Enrollment) error
	IsEnrolled(ctx context.Context, studentID, courseID int) (bool, error)
	ListEnrolled(ctx context.Context, studentID int) ([]*domain.Course, error)
}
