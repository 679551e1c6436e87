//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/backend/internal/domain"
	"github.com/coursehub/backend/internal/repository/postgres"
	"github.com/coursehub/backend/internal/service"
)

func TestTeamAvailabilityIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userRepo := postgres.NewUserRepository(db)
	courseRepo := postgres.NewCourseRepository(db)
	recruitRepo := postgres.NewRecruitRepository(db)
	availabilityRepo := postgres.NewAvailabilityRepository(db)

	tokens := service.NewTokenManager("integration-secret", time.Hour)
	authService := service.NewAuthService(userRepo, tokens)
	courseService := service.NewCourseService(courseRepo, userRepo)
	recruitService := service.NewRecruitService(recruitRepo)
	availabilityService := service.NewAvailabilityService(availabilityRepo, recruitRepo, userRepo, 30)

	// Professor creates the course, three students enroll and team up.
	prof, err := authService.Register(ctx, "p1000", "Prof. Kim", "password123", domain.RoleProfessor)
	require.NoError(t, err)

	ana, err := authService.Register(ctx, "s2001", "Ana", "password123", domain.RoleStudent)
	require.NoError(t, err)
	ben, err := authService.Register(ctx, "s2002", "Ben", "password123", domain.RoleStudent)
	require.NoError(t, err)
	caro, err := authService.Register(ctx, "s2003", "Caro", "password123", domain.RoleStudent)
	require.NoError(t, err)

	course, err := courseService.CreateCourse(ctx, prof.ID, "Distributed Systems", "DS101")
	require.NoError(t, err)

	for _, student := range []*domain.User{ana, ben, caro} {
		_, err := courseService.Enroll(ctx, student.ID, course.ID)
		require.NoError(t, err)
	}

	listing, err := recruitService.Create(ctx, &domain.Recruitment{
		CourseID:    course.ID,
		AuthorID:    ana.ID,
		Title:       "Team for the term project",
		Description: "Looking for two teammates",
		MaxMembers:  4,
	})
	require.NoError(t, err)
	require.True(t, listing.IsMember)

	for _, student := range []*domain.User{ben, caro} {
		joined, err := recruitService.ToggleJoin(ctx, student.ID, listing.ID)
		require.NoError(t, err)
		require.True(t, joined.IsMember)
	}

	// Overlap is Monday 10:00-11:00.
	addInterval := func(userID int, day string, start, end int) {
		t.Helper()
		_, created, err := availabilityService.AddInterval(ctx, &domain.AvailabilityInterval{
			UserID:      userID,
			DayOfWeek:   day,
			StartMinute: start,
			EndMinute:   end,
		})
		require.NoError(t, err)
		require.True(t, created)
	}
	addInterval(ana.ID, "Monday", 540, 660)
	addInterval(ben.ID, "Monday", 600, 720)
	addInterval(caro.ID, "Monday", 600, 690)
	addInterval(ben.ID, "Friday", 840, 900)

	snapshot, err := availabilityService.GetTeamCommonAvailability(ctx, listing.ID)
	require.NoError(t, err)

	assert.Equal(t, listing.ID, snapshot.TeamID)
	assert.Equal(t, 3, snapshot.TeamSize)
	require.Len(t, snapshot.Members, 3)

	assert.Equal(t, []domain.Slot{{Day: 0, Minute: 600}, {Day: 0, Minute: 630}}, snapshot.Slots)
	require.Contains(t, snapshot.DailyBlocks, "Monday")
	assert.Equal(t, []domain.TimeBlock{{StartMinute: 600, EndMinute: 660}}, snapshot.DailyBlocks["Monday"])
	assert.NotContains(t, snapshot.DailyBlocks, "Friday")

	assert.Equal(t, 3, snapshot.Popularity[domain.Slot{Day: 0, Minute: 600}])
	assert.Equal(t, 3, snapshot.Popularity[domain.Slot{Day: 0, Minute: 630}])
	assert.Equal(t, 2, snapshot.Popularity[domain.Slot{Day: 0, Minute: 660}])
	assert.Equal(t, 1, snapshot.Popularity[domain.Slot{Day: 0, Minute: 540}])
	assert.Equal(t, 1, snapshot.Popularity[domain.Slot{Day: 4, Minute: 840}])

	t.Run("duplicate window is acknowledged without a second row", func(t *testing.T) {
		interval, created, err := availabilityService.AddInterval(ctx, &domain.AvailabilityInterval{
			UserID:      ana.ID,
			DayOfWeek:   "Monday",
			StartMinute: 540,
			EndMinute:   660,
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.NotNil(t, interval)

		intervals, err := availabilityService.ListIntervals(ctx, ana.ID)
		require.NoError(t, err)
		assert.Len(t, intervals, 1)
	})

	t.Run("leaving recomputes the snapshot", func(t *testing.T) {
		left, err := recruitService.ToggleJoin(ctx, caro.ID, listing.ID)
		require.NoError(t, err)
		assert.False(t, left.IsMember)

		snapshot, err := availabilityService.GetTeamCommonAvailability(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, snapshot.TeamSize)
		assert.Equal(t, []domain.TimeBlock{{StartMinute: 600, EndMinute: 660}}, snapshot.DailyBlocks["Monday"])
	})

	t.Run("member without intervals empties the snapshot", func(t *testing.T) {
		dana, err := authService.Register(ctx, "s2004", "Dana", "password123", domain.RoleStudent)
		require.NoError(t, err)
		_, err = recruitService.ToggleJoin(ctx, dana.ID, listing.ID)
		require.NoError(t, err)

		snapshot, err := availabilityService.GetTeamCommonAvailability(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, snapshot.TeamSize)
		assert.Empty(t, snapshot.Slots)
		assert.Empty(t, snapshot.DailyBlocks)
	})

	t.Run("unknown team is not found", func(t *testing.T) {
		_, err := availabilityService.GetTeamCommonAvailability(ctx, 424242)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
