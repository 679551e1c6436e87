package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
	"github.com/coursehub/backend/internal/repository"
)

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

func (s *scheduleService) Create(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	if err := s.scheduleRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *scheduleService) ListMine(ctx context.Context, userID int) ([]*domain.ScheduleEntry, error) {
	return s.scheduleRepo.ListByUser(ctx, userID)
}
