package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coursehub/backend/internal/domain"
)

type boardRepository struct {
	db *sql.DB
}

func NewBoardRepository(db *sql.DB) *boardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO board_posts (course_id, author_id, title, content, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		post.CourseID,
		post.AuthorID,
		post.Title,
		post.Content,
		post.Category,
		time.Now(),
	).Scan(&post.ID, &post.CreatedAt)
}

func (r *boardRepository) GetPost(ctx context.Context, id int) (*domain.Post, error) {
	query := `
		SELECT p.id, p.course_id, p.author_id, u.name, p.title, p.content, p.category, p.created_at
		FROM board_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	post := &domain.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.CourseID,
		&post.AuthorID,
		&post.AuthorName,
		&post.Title,
		&post.Content,
		&post.Category,
		&post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("post")
		}
		return nil, err
	}

	return post, nil
}

func (r *boardRepository) ListPosts(ctx context.Context, courseID, viewerID int) ([]*domain.Post, error) {
	query := `
		SELECT p.id, p.course_id, p.author_id, u.name, p.title, p.content, p.category, p.created_at,
			(SELECT COUNT(*) FROM board_post_likes l WHERE l.post_id = p.id) AS likes,
			EXISTS (SELECT 1 FROM board_post_likes l WHERE l.post_id = p.id AND l.user_id = $2) AS is_liked
		FROM board_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.course_id = $1
		ORDER BY p.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post := &domain.Post{}
		err := rows.Scan(
			&post.ID,
			&post.CourseID,
			&post.AuthorID,
			&post.AuthorName,
			&post.Title,
			&post.Content,
			&post.Category,
			&post.CreatedAt,
			&post.Likes,
			&post.IsLiked,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// DeletePost removes comment likes, comments, post likes, then the post, in
// one transaction.
func (r *boardRepository) DeletePost(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	steps := []string{
		`DELETE FROM board_comment_likes
		 WHERE comment_id IN (SELECT id FROM board_comments WHERE post_id = $1)`,
		`DELETE FROM board_comments WHERE post_id = $1`,
		`DELETE FROM board_post_likes WHERE post_id = $1`,
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step, id); err != nil {
			return err
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM board_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("post")
	}

	return tx.Commit()
}

func (r *boardRepository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO board_comments (post_id, author_id, content, parent_comment_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		comment.PostID,
		comment.AuthorID,
		comment.Content,
		comment.ParentCommentID,
		time.Now(),
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *boardRepository) GetComment(ctx context.Context, id int) (*domain.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, u.name, c.content, c.parent_comment_id, c.created_at
		FROM board_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`

	comment := &domain.Comment{}
	var parentID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.AuthorName,
		&comment.Content,
		&parentID,
		&comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("comment")
		}
		return nil, err
	}

	if parentID.Valid {
		v := int(parentID.Int64)
		comment.ParentCommentID = &v
	}

	return comment, nil
}

func (r *boardRepository) ListComments(ctx context.Context, postID, viewerID int) ([]*domain.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, u.name, c.content, c.parent_comment_id, c.created_at,
			(SELECT COUNT(*) FROM board_comment_likes l WHERE l.comment_id = c.id) AS likes,
			EXISTS (SELECT 1 FROM board_comment_likes l WHERE l.comment_id = c.id AND l.user_id = $2) AS is_liked
		FROM board_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, postID, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		comment := &domain.Comment{}
		var parentID sql.NullInt64
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.AuthorName,
			&comment.Content,
			&parentID,
			&comment.CreatedAt,
			&comment.Likes,
			&comment.IsLiked,
		)
		if err != nil {
			return nil, err
		}
		if parentID.Valid {
			v := int(parentID.Int64)
			comment.ParentCommentID = &v
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

// DeleteComment removes the comment, its replies, and likes on either, in one
// transaction.
func (r *boardRepository) DeleteComment(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	steps := []string{
		`DELETE FROM board_comment_likes
		 WHERE comment_id = $1
		    OR comment_id IN (SELECT id FROM board_comments WHERE parent_comment_id = $1)`,
		`DELETE FROM board_comments WHERE parent_comment_id = $1`,
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step, id); err != nil {
			return err
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM board_comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("comment")
	}

	return tx.Commit()
}

func (r *boardRepository) HasPostLike(ctx context.Context, postID, userID int) (bool, error) {
	var liked bool
	err := r.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM board_post_likes WHERE post_id = $1 AND user_id = $2)`,
		postID, userID,
	).Scan(&liked)
	return liked, err
}

func (r *boardRepository) AddPostLike(ctx context.Context, postID, userID int) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO board_post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		postID, userID,
	)
	return err
}

func (r *boardRepository) RemovePostLike(ctx context.Context, postID, userID int) error {
	_, err := r.db.ExecContext(
		ctx,
		`DELETE FROM board_post_likes WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	)
	return err
}

func (r *boardRepository) CountPostLikes(ctx context.Context, postID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM board_post_likes WHERE post_id = $1`,
		postID,
	).Scan(&count)
	return count, err
}

func (r *boardRepository) HasCommentLike(ctx context.Context, commentID, userID int) (bool, error) {
	var liked bool
	err := r.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM board_comment_likes WHERE comment_id = $1 AND user_id = $2)`,
		commentID, userID,
	).Scan(&liked)
	return liked, err
}

func (r *boardRepository) AddCommentLike(ctx context.Context, commentID, userID int) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO board_comment_likes (comment_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		commentID, userID,
	)
	return err
}

func (r *boardRepository) RemoveCommentLike(ctx context.Context, commentID, userID int) error {
	_, err := r.db.ExecContext(
		ctx,
		`DELETE FROM board_comment_likes WHERE comment_id = $1 AND user_id = $2`,
		commentID, userID,
	)
	return err
}

func (r *boardRepository) CountCommentLikes(ctx context.Context, commentID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM board_comment_likes WHERE comment_id = $1`,
		commentID,
	).Scan(&count)
	return count, err
}
