package service

import (
	"context"

	"github.com/coursehub/backend/internal/domain"
	"github.com/coursehub/backend/internal/repository"
)

type boardService struct {
	boardRepo repository.BoardRepository
}

func NewBoardService(boardRepo repository.BoardRepository) BoardService {
	return &boardService{boardRepo: boardRepo}
}

func (s *boardService) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if err := s.boardRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *boardService) ListPosts(ctx context.Context, courseID, viewerID int) ([]*domain.Post, error) {
	return s.boardRepo.ListPosts(ctx, courseID, viewerID)
}

func (s *boardService) DeletePost(ctx context.Context, userID, postID int) error {
	post, err := s.boardRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return domain.ErrForbidden
	}

	return s.boardRepo.DeletePost(ctx, postID)
}

func (s *boardService) CreateComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if _, err := s.boardRepo.GetPost(ctx, comment.PostID); err != nil {
		return nil, err
	}

	if err := s.boardRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *boardService) ListComments(ctx context.Context, postID, viewerID int) ([]*domain.Comment, error) {
	return s.boardRepo.ListComments(ctx, postID, viewerID)
}

func (s *boardService) DeleteComment(ctx context.Context, userID, commentID int) error {
	comment, err := s.boardRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		return domain.ErrForbidden
	}

	return s.boardRepo.DeleteComment(ctx, commentID)
}

func (s *boardService) TogglePostLike(ctx context.Context, userID, postID int) (bool, int, error) {
	if _, err := s.boardRepo.GetPost(ctx, postID); err != nil {
		return false, 0, err
	}

	liked, err := s.boardRepo.HasPostLike(ctx, postID, userID)
	if err != nil {
		return false, 0, err
	}

	if liked {
		err = s.boardRepo.RemovePostLike(ctx, postID, userID)
	} else {
		err = s.boardRepo.AddPostLike(ctx, postID, userID)
	}
	if err != nil {
		return false, 0, err
	}

	count, err := s.boardRepo.CountPostLikes(ctx, postID)
	if err != nil {
		return false, 0, err
	}

	return !liked, count, nil
}

func (s *boardService) ToggleCommentLike(ctx context.Context, userID, commentID int) (bool, int, error) {
	if _, err := s.boardRepo.GetComment(ctx, commentID); err != nil {
		return false, 0, err
	}

	liked, err := s.boardRepo.HasCommentLike(ctx, commentID, userID)
	if err != nil {
		return false, 0, err
	}

	if liked {
		err = s.boardRepo.RemoveCommentLike(ctx, commentID, userID)
	} else {
		err = s.boardRepo.AddCommentLike(ctx, commentID, userID)
	}
	if err != nil {
		return false, 0, err
	}

	count, err := s.boardRepo.CountCommentLikes(ctx, commentID)
	if err != nil {
		return false, 0, err
	}

	return !liked, count, nil
}
