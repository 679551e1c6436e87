package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type ScheduleService interface {
	Create(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error)
	ListMine(ctx context.Context, userID int) ([]*domain.ScheduleEntry, error)
}
