package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/coursehub/backend/internal/domain"
)

type availabilityRepository struct {
	db *sql.DB
}

func NewAvailabilityRepository(db *sql.DB) *availabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) Create(ctx context.Context, interval *domain.AvailabilityInterval) error {
	query := `
		INSERT INTO available_times (user_id, day_of_week, start_minute, end_minute, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		interval.UserID,
		interval.DayOfWeek,
		interval.StartMinute,
		interval.EndMinute,
		time.Now(),
	).Scan(&interval.ID, &interval.CreatedAt)
}

func (r *availabilityRepository) Exists(ctx context.Context, interval *domain.AvailabilityInterval) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM available_times
			WHERE user_id = $1 AND day_of_week = $2 AND start_minute = $3 AND end_minute = $4
		)
	`

	var exists bool
	err := r.db.QueryRowContext(
		ctx,
		query,
		interval.UserID,
		interval.DayOfWeek,
		interval.StartMinute,
		interval.EndMinute,
	).Scan(&exists)
	return exists, err
}

func (r *availabilityRepository) ListByUser(ctx context.Context, userID int) ([]*domain.AvailabilityInterval, error) {
	// Ordering here is presentational (my-times listing); the slot encoder
	// is order-insensitive.
	query := `
		SELECT id, user_id, day_of_week, start_minute, end_minute, created_at
		FROM available_times
		WHERE user_id = $1
		ORDER BY day_of_week, start_minute
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	intervals := make([]*domain.AvailabilityInterval, 0)
	for rows.Next() {
		interval := &domain.AvailabilityInterval{}
		err := rows.Scan(
			&interval.ID,
			&interval.UserID,
			&interval.DayOfWeek,
			&interval.StartMinute,
			&interval.EndMinute,
			&interval.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}

	return intervals, rows.Err()
}

func (r *availabilityRepository) DeleteOwned(ctx context.Context, id, userID int) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM available_times WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("available time")
	}

	return nil
}
