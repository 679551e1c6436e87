package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coursehub/backend/internal/domain"
)

type recruitRepository struct {
	db *sql.DB
}

func NewRecruitRepository(db *sql.DB) *recruitRepository {
	return &recruitRepository{db: db}
}

// Create inserts the listing and joins the author as its first member in one
// transaction.
func (r *recruitRepository) Create(ctx context.Context, recruitment *domain.Recruitment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO recruitments (course_id, author_id, title, description, max_members, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	now := time.Now()
	err = tx.QueryRowContext(
		ctx,
		query,
		recruitment.CourseID,
		recruitment.AuthorID,
		recruitment.Title,
		recruitment.Description,
		recruitment.MaxMembers,
		now,
	).Scan(&recruitment.ID, &recruitment.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO recruitment_members (recruitment_id, user_id, joined_at) VALUES ($1, $2, $3)`,
		recruitment.ID, recruitment.AuthorID, now,
	)
	if err != nil {
		return err
	}

	recruitment.MemberCount = 1
	recruitment.IsMember = true

	return tx.Commit()
}

func (r *recruitRepository) GetByID(ctx context.Context, id int) (*domain.Recruitment, error) {
	query := `
		SELECT r.id, r.course_id, r.author_id, u.name, r.title, r.description, r.max_members, r.created_at,
			(SELECT COUNT(*) FROM recruitment_members m WHERE m.recruitment_id = r.id) AS member_count
		FROM recruitments r
		JOIN users u ON u.id = r.author_id
		WHERE r.id = $1
	`

	rec := &domain.Recruitment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.CourseID,
		&rec.AuthorID,
		&rec.AuthorName,
		&rec.Title,
		&rec.Description,
		&rec.MaxMembers,
		&rec.CreatedAt,
		&rec.MemberCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("recruitment")
		}
		return nil, err
	}

	return rec, nil
}

func (r *recruitRepository) ListByCourse(ctx context.Context, courseID, viewerID int) ([]*domain.Recruitment, error) {
	query := `
		SELECT r.id, r.course_id, r.author_id, u.name, r.title, r.description, r.max_members, r.created_at,
			(SELECT COUNT(*) FROM recruitment_members m WHERE m.recruitment_id = r.id) AS member_count,
			EXISTS (SELECT 1 FROM recruitment_members m WHERE m.recruitment_id = r.id AND m.user_id = $2) AS is_member
		FROM recruitments r
		JOIN users u ON u.id = r.author_id
		WHERE r.course_id = $1
		ORDER BY r.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recruitments := make([]*domain.Recruitment, 0)
	for rows.Next() {
		rec := &domain.Recruitment{}
		err := rows.Scan(
			&rec.ID,
			&rec.CourseID,
			&rec.AuthorID,
			&rec.AuthorName,
			&rec.Title,
			&rec.Description,
			&rec.MaxMembers,
			&rec.CreatedAt,
			&rec.MemberCount,
			&rec.IsMember,
		)
		if err != nil {
			return nil, err
		}
		recruitments = append(recruitments, rec)
	}

	return recruitments, rows.Err()
}

// Delete removes members first, then the listing.
func (r *recruitRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recruitment_members WHERE recruitment_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM recruitments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("recruitment")
	}

	return tx.Commit()
}

func (r *recruitRepository) AddMember(ctx context.Context, recruitmentID, userID int) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO recruitment_members (recruitment_id, user_id, joined_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		recruitmentID, userID, time.Now(),
	)
	return err
}

func (r *recruitRepository) RemoveMember(ctx context.Context, recruitmentID, userID int) error {
	_, err := r.db.ExecContext(
		ctx,
		`DELETE FROM recruitment_members WHERE recruitment_id = $1 AND user_id = $2`,
		recruitmentID, userID,
	)
	return err
}

func (r *recruitRepository) HasMember(ctx context.Context, recruitmentID, userID int) (bool, error) {
	var member bool
	err := r.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM recruitment_members WHERE recruitment_id = $1 AND user_id = $2)`,
		recruitmentID, userID,
	).Scan(&member)
	return member, err
}

func (r *recruitRepository) CountMembers(ctx context.Context, recruitmentID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM recruitment_members WHERE recruitment_id = $1`,
		recruitmentID,
	).Scan(&count)
	return count, err
}

func (r *recruitRepository) ListMemberIDs(ctx context.Context, recruitmentID int) ([]int, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT user_id FROM recruitment_members WHERE recruitment_id = $1 ORDER BY joined_at, user_id`,
		recruitmentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
