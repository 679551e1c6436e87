package service

import (
	"context"
	"errors"
	"strings"

	"github.com/coursehub/backend/internal/domain"
	"github.com/coursehub/backend/internal/repository"
	"github.com/google/uuid"
)

type courseService struct {
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
}

func NewCourseService(courseRepo repository.CourseRepository, userRepo repository.UserRepository) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}

func (s *courseService) CreateCourse(ctx context.Context, professorID int, title, code string) (*domain.Course, error) {
	professor, err := s.userRepo.GetByID(ctx, professorID)
	if err != nil {
		return nil, err
	}
	if professor.Role != domain.RoleProfessor {
		return nil, domain.ErrForbidden
	}

	if code == "" {
		code = generateCourseCode()
	}

	existing, err := s.courseRepo.GetByCode(ctx, code)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCourseExists
	}

	course := &domain.Course{
		Title:       title,
		Code:        code,
		ProfessorID: professorID,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, professorID, courseID int) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if course.ProfessorID != professorID {
		return domain.ErrForbidden
	}

	return s.courseRepo.Delete(ctx, courseID)
}

func (s *courseService) ListMine(ctx context.Context, professorID int) ([]*domain.Course, error) {
	professor, err := s.userRepo.GetByID(ctx, professorID)
	if err != nil {
		return nil, err
	}
	if professor.Role != domain.RoleProfessor {
		return nil, domain.ErrForbidden
	}

	return s.courseRepo.ListByProfessor(ctx, professorID)
}

func (s *courseService) ListAll(ctx context.Context) ([]*domain.Course, error) {
	return s.courseRepo.ListAll(ctx)
}

func (s *courseService) Enroll(ctx context.Context, studentID, courseID int) (*domain.Enrollment, error) {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.Role != domain.RoleStudent {
		return nil, domain.ErrForbidden
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	enrolled, err := s.courseRepo.IsEnrolled(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, domain.ErrAlreadyEnrolled
	}

	enrollment := &domain.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}
	if err := s.courseRepo.Enroll(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

func (s *courseService) ListEnrolled(ctx context.Context, studentID int) ([]*domain.Course, error) {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.Role != domain.RoleStudent {
		return nil, domain.ErrForbidden
	}

	return s.courseRepo.ListEnrolled(ctx, studentID)
}

// generateCourseCode derives a short join code for courses created without
// an explicit one.
func generateCourseCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
