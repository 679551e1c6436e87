package service

import (
	"context"
	"errors"

	"github.com/coursehub/backend/internal/domain"
	"github.com/coursehub/backend/internal/repository"
	"github.com/coursehub/backend/internal/timegrid"
)

type availabilityService struct {
	availabilityRepo repository.AvailabilityRepository
	recruitRepo      repository.RecruitRepository
	userRepo         repository.UserRepository
	granularity      int
}

func NewAvailabilityService(
	availabilityRepo repository.AvailabilityRepository,
	recruitRepo repository.RecruitRepository,
	userRepo repository.UserRepository,
	granularityMinutes int,
) AvailabilityService {
	return &availabilityService{
		availabilityRepo: availabilityRepo,
		recruitRepo:      recruitRepo,
		userRepo:         userRepo,
		granularity:      granularityMinutes,
	}
}

// AddInterval stores the window; a duplicate of an existing one is
// acknowledged without inserting (second return reports whether a new row
// was created).
func (s *availabilityService) AddInterval(ctx context.Context, interval *domain.AvailabilityInterval) (*domain.AvailabilityInterval, bool, error) {
	if interval.StartMinute >= interval.EndMinute {
		return nil, false, domain.NewBadRequestError("start_time must be before end_time")
	}
	if _, ok := timegrid.DayIndex(interval.DayOfWeek); !ok {
		return nil, false, domain.NewBadRequestError("unknown day_of_week")
	}

	exists, err := s.availabilityRepo.Exists(ctx, interval)
	if err != nil {
		return nil, false, err
	}
	if exists {
		return interval, false, nil
	}

	if err := s.availabilityRepo.Create(ctx, interval); err != nil {
		return nil, false, err
	}

	return interval, true, nil
}

func (s *availabilityService) ListIntervals(ctx context.Context, userID int) ([]*domain.AvailabilityInterval, error) {
	return s.availabilityRepo.ListByUser(ctx, userID)
}

func (s *availabilityService) DeleteInterval(ctx context.Context, userID, intervalID int) error {
	return s.availabilityRepo.DeleteOwned(ctx, intervalID, userID)
}

// GetTeamCommonAvailability is a pure computation over a snapshot of
// membership and availability data fetched at call time. Collaborator
// failures surface unchanged; no retries.
func (s *availabilityService) GetTeamCommonAvailability(ctx context.Context, teamID int) (*domain.TeamAvailability, error) {
	if _, err := s.recruitRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, err
	}

	memberIDs, err := s.recruitRepo.ListMemberIDs(ctx, teamID)
	if err != nil {
		return nil, err
	}

	result := &domain.TeamAvailability{
		TeamID:      teamID,
		TeamSize:    len(memberIDs),
		Members:     make([]domain.MemberAvailability, 0, len(memberIDs)),
		Slots:       []domain.Slot{},
		DailyBlocks: map[string][]domain.TimeBlock{},
		Popularity:  map[domain.Slot]int{},
	}
	if len(memberIDs) == 0 {
		return result, nil
	}

	users, err := s.userRepo.GetByIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	sets := make([]timegrid.SlotSet, 0, len(memberIDs))
	for _, id := range memberIDs {
		intervals, err := s.availabilityRepo.ListByUser(ctx, id)
		if err != nil {
			return nil, err
		}

		member := domain.MemberAvailability{UserID: id, Intervals: intervals}
		if u, ok := byID[id]; ok {
			member.Name = u.Name
			member.Role = u.Role
			// The student number is only exposed for students.
			if u.Role == domain.RoleStudent {
				member.StudentID = u.StudentID
			}
		}
		result.Members = append(result.Members, member)

		sets = append(sets, timegrid.Encode(intervals, s.granularity))
	}

	common := timegrid.Intersect(sets)
	result.Slots = timegrid.SortedSlots(common)
	result.DailyBlocks = timegrid.Decode(common, s.granularity)
	result.Popularity = timegrid.Popularity(sets)

	return result, nil
}
