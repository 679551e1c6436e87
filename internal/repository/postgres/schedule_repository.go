package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/coursehub/backend/internal/domain"
)

type scheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) *scheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, entry *domain.ScheduleEntry) error {
	query := `
		INSERT INTO schedules (user_id, team_id, title, date, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		entry.UserID,
		entry.TeamID,
		entry.Title,
		entry.Date,
		entry.StartTime,
		entry.EndTime,
		time.Now(),
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *scheduleRepository) ListByUser(ctx context.Context, userID int) ([]*domain.ScheduleEntry, error) {
	query := `
		SELECT id, user_id, team_id, title, date, start_time, end_time, created_at
		FROM schedules
		WHERE user_id = $1
		ORDER BY date, start_time
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ScheduleEntry, 0)
	for rows.Next() {
		entry := &domain.ScheduleEntry{}
		var teamID sql.NullInt64
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&teamID,
			&entry.Title,
			&entry.Date,
			&entry.StartTime,
			&entry.EndTime,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if teamID.Valid {
			v := int(teamID.Int64)
			entry.TeamID = &v
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
