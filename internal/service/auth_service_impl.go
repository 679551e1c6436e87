package service

import (
	"context"
	"errors"

	"github.com/coursehub/backend/internal/domain"
	"github.com/coursehub/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   *TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, studentID, name, password string, role domain.Role) (*domain.User, error) {
	if role != domain.RoleStudent && role != domain.RoleProfessor {
		role = domain.RoleStudent
	}

	existing, err := s.userRepo.GetByStudentID(ctx, studentID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		StudentID:    studentID,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, studentID, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrUnauthorized
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
