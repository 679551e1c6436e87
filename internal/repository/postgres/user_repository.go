package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coursehub/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func NewUserRepositoryWithTx(tx *sql.Tx) *userRepository {
	return &userRepository{executor: tx}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (student_id, name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		user.StudentID,
		user.Name,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		time.Now(),
	).Scan(&user.ID, &user.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrUserExists
	}

	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT id, student_id, name, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.executor.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByStudentID(ctx context.Context, studentID string) (*domain.User, error) {
	query := `
		SELECT id, student_id, name, email, password_hash, role, created_at
		FROM users
		WHERE student_id = $1
	`
	return r.scanUser(r.executor.QueryRowContext(ctx, query, studentID))
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []int) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}

	query := `
		SELECT id, student_id, name, email, password_hash, role, created_at
		FROM users
		WHERE id = ANY($1)
		ORDER BY id
	`

	arr := make([]int64, 0, len(ids))
	for _, id := range ids {
		arr = append(arr, int64(id))
	}

	rows, err := r.executor.QueryContext(ctx, query, arr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0, len(ids))
	for rows.Next() {
		user := &domain.User{}
		var role string
		var email sql.NullString
		err := rows.Scan(
			&user.ID,
			&user.StudentID,
			&user.Name,
			&email,
			&user.PasswordHash,
			&role,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		user.Email = email.String
		user.Role = domain.Role(role)
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int, name, email string) (*domain.User, error) {
	query := `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1
		RETURNING id, student_id, name, email, password_hash, role, created_at
	`
	return r.scanUser(r.executor.QueryRowContext(ctx, query, id, name, email))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	var role string
	var email sql.NullString
	err := row.Scan(
		&user.ID,
		&user.StudentID,
		&user.Name,
		&email,
		&user.PasswordHash,
		&role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}

	user.Email = email.String
	user.Role = domain.Role(role)
	return user, nil
}
