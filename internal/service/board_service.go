package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
)

type BoardService interface {
	CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error)
	ListPosts(ctx context.Context, courseID, viewerID int) ([]*domain.Post, error)
	DeletePost(ctx context.Context, userID, postID int) error

	CreateComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	ListComments(ctx context.Context, postID, viewerID int) ([]*domain.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID int) error

	TogglePostLike(ctx context.Context, userID, postID int) (bool, int, error)
	ToggleCommentLike(ctx context.Context, userID, commentID int) (bool, int, error)
}
