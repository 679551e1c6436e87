package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
	"github.com/coursehub/backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int, name, email string) (*domain.User, error) {
	current, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = current.Name
	}
	if email == "" {
		email = current.Email
	}

	return s.userRepo.UpdateProfile(ctx, userID, name, email)
}
