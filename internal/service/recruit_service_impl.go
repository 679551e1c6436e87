package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
	"github.com/coursehub/backend/internal/repository"
)

type recruitService struct {
	recruitRepo repository.RecruitRepository
}

func NewRecruitService(recruitRepo repository.RecruitRepository) RecruitService {
	return &recruitService{recruitRepo: recruitRepo}
}

func (s *recruitService) Create(ctx context.Context, recruitment *domain.Recruitment) (*domain.Recruitment, error) {
	if recruitment.MaxMembers < 2 {
		return nil, domain.NewBadRequestError("max_members must be at least 2")
	}

	if err := s.recruitRepo.Create(ctx, recruitment); err != nil {
		return nil, err
	}
	return recruitment, nil
}

func (s *recruitService) ListByCourse(ctx context.Context, courseID, viewerID int) ([]*domain.Recruitment, error) {
	return s.recruitRepo.ListByCourse(ctx, courseID, viewerID)
}

func (s *recruitService) Delete(ctx context.Context, userID, recruitmentID int) error {
	recruitment, err := s.recruitRepo.GetByID(ctx, recruitmentID)
	if err != nil {
		return err
	}
	if recruitment.AuthorID != userID {
		return domain.ErrForbidden
	}

	return s.recruitRepo.Delete(ctx, recruitmentID)
}

func (s *recruitService) ToggleJoin(ctx context.Context, userID, recruitmentID int) (*domain.Recruitment, error) {
	recruitment, err := s.recruitRepo.GetByID(ctx, recruitmentID)
	if err != nil {
		return nil, err
	}

	member, err := s.recruitRepo.HasMember(ctx, recruitmentID, userID)
	if err != nil {
		return nil, err
	}

	if member {
		if err := s.recruitRepo.RemoveMember(ctx, recruitmentID, userID); err != nil {
			return nil, err
		}
	} else {
		count, err := s.recruitRepo.CountMembers(ctx, recruitmentID)
		if err != nil {
			return nil, err
		}
		if count >= recruitment.MaxMembers {
			return nil, domain.ErrTeamFull
		}
		if err := s.recruitRepo.AddMember(ctx, recruitmentID, userID); err != nil {
			return nil, err
		}
	}

	updated, err := s.recruitRepo.GetByID(ctx, recruitmentID)
	if err != nil {
		return nil, err
	}
	updated.IsMember = !member

	return updated, nil
}
