package repository

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type ScheduleRepository interface {
	Create(ctx context.Context, entry *domain.ScheduleEntry) error
	ListByUser(ctx context.Context, userID int) ([]*domain.ScheduleEntry, error)
}
