package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int, name, email string) (*domain.User, error)
}
