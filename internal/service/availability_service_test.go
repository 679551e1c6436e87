package service

import (
	"context"
	"errors"
	"testing"

	"github.com/coursehub/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAvailabilityService(t *testing.T) (AvailabilityService, *MockAvailabilityRepository, *MockRecruitRepository, *MockUserRepository) {
	t.Helper()
	availRepo := new(MockAvailabilityRepository)
	recruitRepo := new(MockRecruitRepository)
	userRepo := new(MockUserRepository)
	return NewAvailabilityService(availRepo, recruitRepo, userRepo, 30), availRepo, recruitRepo, userRepo
}

func member(id int, name string, role domain.Role) *domain.User {
	return &domain.User{ID: id, StudentID: "s" + name, Name: name, Role: role}
}

func iv(userID int, day string, start, end int) *domain.AvailabilityInterval {
	return &domain.AvailabilityInterval{UserID: userID, DayOfWeek: day, StartMinute: start, EndMinute: end}
}

func TestAvailabilityService_GetTeamCommonAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown team is not found", func(t *testing.T) {
		svc, _, recruitRepo, _ := newAvailabilityService(t)
		recruitRepo.On("GetByID", mock.Anything, 99).Return(nil, domain.NewNotFoundError("recruitment"))

		_, err := svc.GetTeamCommonAvailability(ctx, 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		recruitRepo.AssertExpectations(t)
	})

	t.Run("memberless team is a valid empty snapshot", func(t *testing.T) {
		svc, _, recruitRepo, _ := newAvailabilityService(t)
		recruitRepo.On("GetByID", mock.Anything, 1).Return(&domain.Recruitment{ID: 1}, nil)
		recruitRepo.On("ListMemberIDs", mock.Anything, 1).Return([]int{}, nil)

		got, err := svc.GetTeamCommonAvailability(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 0, got.TeamSize)
		assert.Empty(t, got.Members)
		assert.Empty(t, got.Slots)
		assert.Empty(t, got.DailyBlocks)
	})

	t.Run("overlap of two members becomes one block", func(t *testing.T) {
		svc, availRepo, recruitRepo, userRepo := newAvailabilityService(t)
		recruitRepo.On("GetByID", mock.Anything, 1).Return(&domain.Recruitment{ID: 1}, nil)
		recruitRepo.On("ListMemberIDs", mock.Anything, 1).Return([]int{10, 11}, nil)
		userRepo.On("GetByIDs", mock.Anything, []int{10, 11}).Return([]*domain.User{
			member(10, "Ana", domain.RoleStudent),
			member(11, "Ben", domain.RoleStudent),
		}, nil)
		availRepo.On("ListByUser", mock.Anything, 10).
			Return([]*domain.AvailabilityInterval{iv(10, "Monday", 9*60, 11*60)}, nil)
		availRepo.On("ListByUser", mock.Anything, 11).
			Return([]*domain.AvailabilityInterval{iv(11, "Monday", 10*60, 12*60)}, nil)

		got, err := svc.GetTeamCommonAvailability(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 2, got.TeamSize)
		require.Len(t, got.Slots, 2)
		assert.Equal(t, domain.Slot{Day: 0, Minute: 600}, got.Slots[0])
		assert.Equal(t, domain.Slot{Day: 0, Minute: 630}, got.Slots[1])
		require.Len(t, got.DailyBlocks["Monday"], 1)
		assert.Equal(t, domain.TimeBlock{StartMinute: 600, EndMinute: 660}, got.DailyBlocks["Monday"][0])
	})

	t.Run("member with no declared time empties the intersection", func(t *testing.T) {
		svc, availRepo, recruitRepo, userRepo := newAvailabilityService(t)
		recruitRepo.On("GetByID", mock.Anything, 1).Return(&domain.Recruitment{ID: 1}, nil)
		recruitRepo.On("ListMemberIDs", mock.Anything, 1).Return([]int{10, 11}, nil)
		userRepo.On("GetByIDs", mock.Anything, []int{10, 11}).Return([]*domain.User{
			member(10, "Ana", domain.RoleStudent),
			member(11, "Ben", domain.RoleStudent),
		}, nil)
		availRepo.On("ListByUser", mock.Anything, 10).
			Return([]*domain.AvailabilityInterval{iv(10, "Monday", 9*60, 10*60)}, nil)
		availRepo.On("ListByUser", mock.Anything, 11).
			Return([]*domain.AvailabilityInterval{}, nil)

		got, err := svc.GetTeamCommonAvailability(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 2, got.TeamSize)
		assert.Empty(t, got.Slots)
		assert.Empty(t, got.DailyBlocks)
		// Popularity is independent of the empty intersection.
		assert.Equal(t, 1, got.Popularity[domain.Slot{Day: 0, Minute: 540}])
	})

	t.Run("three members same hour with full popularity", func(t *testing.T) {
		svc, availRepo, recruitRepo, userRepo := newAvailabilityService(t)
		recruitRepo.On("GetByID", mock.Anything, 1).Return(&domain.Recruitment{ID: 1}, nil)
		recruitRepo.On("ListMemberIDs", mock.Anything, 1).Return([]int{1, 2, 3}, nil)
		userRepo.On("GetByIDs", mock.Anything, []int{1, 2, 3}).Return([]*domain.User{
			member(1, "Ana", domain.RoleStudent),
			member(2, "Ben", domain.RoleStudent),
			member(3, "Cho", domain.RoleStudent),
		}, nil)
		for _, id := range []int{1, 2, 3} {
			availRepo.On("ListByUser", mock.Anything, id).
				Return([]*domain.AvailabilityInterval{iv(id, "Tuesday", 14*60, 15*60)}, nil)
		}

		got, err := svc.GetTeamCommonAvailability(ctx, 1)

		require.NoError(t, err)
		require.Len(t, got.DailyBlocks["Tuesday"], 1)
		assert.Equal(t, domain.TimeBlock{StartMinute: 840, EndMinute: 900}, got.DailyBlocks["Tuesday"][0])
		for _, slot := range got.Slots {
			assert.Equal(t, 3, got.Popularity[slot])
		}
	})

	t.Run("student number is masked for non-student members", func(t *testing.T) {
		svc, availRepo, recruitRepo, userRepo := newAvailabilityService(t)
		recruitRepo.On("GetByID", mock.Anything, 1).Return(&domain.Recruitment{ID: 1}, nil)
		recruitRepo.On("ListMemberIDs", mock.Anything, 1).Return([]int{10, 20}, nil)
		userRepo.On("GetByIDs", mock.Anything, []int{10, 20}).Return([]*domain.User{
			member(10, "Ana", domain.RoleStudent),
			member(20, "Prof", domain.RoleProfessor),
		}, nil)
		availRepo.On("ListByUser", mock.Anything, 10).Return([]*domain.AvailabilityInterval{}, nil)
		availRepo.On("ListByUser", mock.Anything, 20).Return([]*domain.AvailabilityInterval{}, nil)

		got, err := svc.GetTeamCommonAvailability(ctx, 1)

		require.NoError(t, err)
		require.Len(t, got.Members, 2)
		assert.Equal(t, "sAna", got.Members[0].StudentID)
		assert.Equal(t, "", got.Members[1].StudentID)
	})

	t.Run("store failures surface unchanged", func(t *testing.T) {
		svc, availRepo, recruitRepo, userRepo := newAvailabilityService(t)
		storeErr := errors.New("connection reset")
		recruitRepo.On("GetByID", mock.Anything, 1).Return(&domain.Recruitment{ID: 1}, nil)
		recruitRepo.On("ListMemberIDs", mock.Anything, 1).Return([]int{10}, nil)
		userRepo.On("GetByIDs", mock.Anything, []int{10}).Return([]*domain.User{member(10, "Ana", domain.RoleStudent)}, nil)
		availRepo.On("ListByUser", mock.Anything, 10).Return(nil, storeErr)

		_, err := svc.GetTeamCommonAvailability(ctx, 1)

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestAvailabilityService_AddInterval(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects inverted window", func(t *testing.T) {
		svc, _, _, _ := newAvailabilityService(t)

		_, _, err := svc.AddInterval(ctx, iv(1, "Monday", 600, 540))

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "BAD_REQUEST", domainErr.Code)
	})

	t.Run("rejects unknown weekday", func(t *testing.T) {
		svc, _, _, _ := newAvailabilityService(t)

		_, _, err := svc.AddInterval(ctx, iv(1, "Someday", 540, 600))

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "BAD_REQUEST", domainErr.Code)
	})

	t.Run("duplicate window is acknowledged without insert", func(t *testing.T) {
		svc, availRepo, _, _ := newAvailabilityService(t)
		in := iv(1, "Monday", 540, 600)
		availRepo.On("Exists", mock.Anything, in).Return(true, nil)

		_, created, err := svc.AddInterval(ctx, in)

		require.NoError(t, err)
		assert.False(t, created)
		availRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("new window is stored", func(t *testing.T) {
		svc, availRepo, _, _ := newAvailabilityService(t)
		in := iv(1, "Monday", 540, 600)
		availRepo.On("Exists", mock.Anything, in).Return(false, nil)
		availRepo.On("Create", mock.Anything, in).Return(nil)

		_, created, err := svc.AddInterval(ctx, in)

		require.NoError(t, err)
		assert.True(t, created)
		availRepo.AssertExpectations(t)
	})
}
