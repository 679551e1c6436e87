package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByStudentID(ctx context.Context, studentID string) (*domain.User, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []int) ([]*domain.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id int, name, email string) (*domain.User, error) {
	args := m.Called(ctx, id, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id int) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseRepository) ListByProfessor(ctx context.Context, professorID int) ([]*domain.Course, error) {
	args := m.Called(ctx, professorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) ListAll(ctx context.Context) ([]*domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) Enroll(ctx context.Context, enrollment *domain.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockCourseRepository) IsEnrolled(ctx context.Context, studentID, courseID int) (bool, error) {
	args := m.Called(ctx, studentID, courseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCourseRepository) ListEnrolled(ctx context.Context, studentID int) ([]*domain.Course, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Course), args.Error(1)
}

type MockRecruitRepository struct {
	mock.Mock
}

func (m *MockRecruitRepository) Create(ctx context.Context, recruitment *domain.Recruitment) error {
	args := m.Called(ctx, recruitment)
	return args.Error(0)
}

func (m *MockRecruitRepository) GetByID(ctx context.Context, id int) (*domain.Recruitment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruitment), args.Error(1)
}

func (m *MockRecruitRepository) ListByCourse(ctx context.Context, courseID, viewerID int) ([]*domain.Recruitment, error) {
	args := m.Called(ctx, courseID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Recruitment), args.Error(1)
}

func (m *MockRecruitRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecruitRepository) AddMember(ctx context.Context, recruitmentID, userID int) error {
	args := m.Called(ctx, recruitmentID, userID)
	return args.Error(0)
}

func (m *MockRecruitRepository) RemoveMember(ctx context.Context, recruitmentID, userID int) error {
	args := m.Called(ctx, recruitmentID, userID)
	return args.Error(0)
}

func (m *MockRecruitRepository) HasMember(ctx context.Context, recruitmentID, userID int) (bool, error) {
	args := m.Called(ctx, recruitmentID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecruitRepository) CountMembers(ctx context.Context, recruitmentID int) (int, error) {
	args := m.Called(ctx, recruitmentID)
	return args.Int(0), args.Error(1)
}

func (m *MockRecruitRepository) ListMemberIDs(ctx context.Context, recruitmentID int) ([]int, error) {
	args := m.Called(ctx, recruitmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) Create(ctx context.Context, interval *domain.AvailabilityInterval) error {
	args := m.Called(ctx, interval)
	return args.Error(0)
}

func (m *MockAvailabilityRepository) Exists(ctx context.Context, interval *domain.AvailabilityInterval) (bool, error) {
	args := m.Called(ctx, interval)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvailabilityRepository) ListByUser(ctx context.Context, userID int) ([]*domain.AvailabilityInterval, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AvailabilityInterval), args.Error(1)
}

func (m *MockAvailabilityRepository) DeleteOwned(ctx context.Context, id, userID int) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
