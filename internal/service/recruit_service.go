package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type RecruitService interface {
	Create(ctx context.Context, recruitment *domain.Recruitment) (*domain.Recruitment, error)
	ListByCourse(ctx context.Context, courseID, viewerID int) ([]*domain.Recruitment, error)
	Delete(ctx context.Context, userID, recruitmentID int) error
	// ToggleJoin joins the caller to the listing, or leaves it if already a
	// member. Returns the refreshed listing.
	ToggleJoin(ctx context.Context, userID, recruitmentID int) (*domain.Recruitment, error)
}
