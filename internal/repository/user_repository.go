package repository

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByStudentID(ctx context.Context, studentID string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id int, name, email string) (*domain.User, error)
}
