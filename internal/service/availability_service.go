package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type AvailabilityService interface {
	AddInterval(ctx context.Context, interval *domain.AvailabilityInterval) (*domain.AvailabilityInterval, bool, error)
	ListIntervals(ctx context.Context, userID int) ([]*domain.AvailabilityInterval, error)
	DeleteInterval(ctx context.Context, userID, intervalID int) error

	// GetTeamCommonAvailability computes the slots during which every joined
	// member of the recruitment team is simultaneously free. Unknown team id
	// is a not-found error; a memberless team is a valid empty snapshot.
	GetTeamCommonAvailability(ctx context.Context, teamID int) (*domain.TeamAvailability, error)
}
