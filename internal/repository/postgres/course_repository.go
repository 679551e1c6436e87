package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coursehub/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

type courseRepository struct {
	executor DBExecutor
}

func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{executor: db}
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	query := `
		INSERT INTO courses (title, code, professor_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		course.Title,
		course.Code,
		course.ProfessorID,
		time.Now(),
	).Scan(&course.ID, &course.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrCourseExists
	}

	return err
}

func (r *courseRepository) GetByID(ctx context.Context, id int) (*domain.Course, error) {
	query := `
		SELECT id, title, code, professor_id, created_at
		FROM courses
		WHERE id = $1
	`
	return r.scanCourse(r.executor.QueryRowContext(ctx, query, id))
}

func (r *courseRepository) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	query := `
		SELECT id, title, code, professor_id, created_at
		FROM courses
		WHERE code = $1
	`
	return r.scanCourse(r.executor.QueryRowContext(ctx, query, code))
}

func (r *courseRepository) Delete(ctx context.Context, id int) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("course")
	}

	return nil
}

func (r *courseRepository) ListByProfessor(ctx context.Context, professorID int) ([]*domain.Course, error) {
	query := `
		SELECT id, title, code, professor_id, created_at
		FROM courses
		WHERE professor_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, professorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectCourses(rows)
}

func (r *courseRepository) ListAll(ctx context.Context) ([]*domain.Course, error) {
	query := `
		SELECT id, title, code, professor_id, created_at
		FROM courses
		ORDER BY created_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectCourses(rows)
}

func (r *courseRepository) Enroll(ctx context.Context, enrollment *domain.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, enrolled_at)
		VALUES ($1, $2, $3)
		RETURNING id, enrolled_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		enrollment.StudentID,
		enrollment.CourseID,
		time.Now(),
	).Scan(&enrollment.ID, &enrollment.EnrolledAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrAlreadyEnrolled
	}

	return err
}

func (r *courseRepository) IsEnrolled(ctx context.Context, studentID, courseID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2
		)
	`

	var enrolled bool
	err := r.executor.QueryRowContext(ctx, query, studentID, courseID).Scan(&enrolled)
	return enrolled, err
}

func (r *courseRepository) ListEnrolled(ctx context.Context, studentID int) ([]*domain.Course, error) {
	query := `
		SELECT c.id, c.title, c.code, c.professor_id, c.created_at
		FROM courses c
		JOIN enrollments e ON e.course_id = c.id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectCourses(rows)
}

func (r *courseRepository) scanCourse(row *sql.Row) (*domain.Course, error) {
	course := &domain.Course{}
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Code,
		&course.ProfessorID,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("course")
		}
		return nil, err
	}
	return course, nil
}

func (r *courseRepository) collectCourses(rows *sql.Rows) ([]*domain.Course, error) {
	courses := make([]*domain.Course, 0)
	for rows.Next() {
		course := &domain.Course{}
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Code,
			&course.ProfessorID,
			&course.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}
