package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, studentID, name, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, studentID, password string) (string, *domain.User, error)
}
