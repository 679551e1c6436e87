package repository

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type BoardRepository interface {
	CreatePost(ctx context.Context, post *domain.Post) error
	GetPost(ctx context.Context, id int) (*domain.Post, error)
	// ListPosts returns a course's posts newest first, with like counts and
	// the viewer's like flag filled in.
	ListPosts(ctx context.Context, courseID, viewerID int) ([]*domain.Post, error)
	// DeletePost removes the post with its comments and likes.
	DeletePost(ctx context.Context, id int) error

	CreateComment(ctx context.Context, comment *domain.Comment) error
	GetComment(ctx context.Context, id int) (*domain.Comment, error)
	ListComments(ctx context.Context, postID, viewerID int) ([]*domain.Comment, error)
	// DeleteComment removes the comment with its replies and likes.
	DeleteComment(ctx context.Context, id int) error

	HasPostLike(ctx context.Context, postID, userID int) (bool, error)
	AddPostLike(ctx context.Context, postID, userID int) error
	RemovePostLike(ctx context.Context, postID, userID int) error
	CountPostLikes(ctx context.Context, postID int) (int, error)

	HasCommentLike(ctx context.Context, commentID, userID int) (bool, error)
	AddCommentLike(ctx context.Context, commentID, userID int) error
	RemoveCommentLike(ctx context.Context, commentID, userID int) error
	CountCommentLikes(ctx context.Context, commentID int) (int, error)
}
