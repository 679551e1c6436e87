package repository

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, interval *domain.AvailabilityInterval) error
	Exists(ctx context.Context, interval *domain.AvailabilityInterval) (bool, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.AvailabilityInterval, error)
	// DeleteOwned removes the interval only if it belongs to userID;
	// domain.ErrNotFound otherwise.
	DeleteOwned(ctx context.Context, id, userID int) error
}
