package handler

import (
	"encoding/json"
	"net/http"

	"github.com/coursehub/backend/internal/domain"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	post, err := h.boardService.CreatePost(r.Context(), &domain.Post{
		CourseID: req.CourseID,
		AuthorID: userIDFrom(r.Context()),
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatePostResponse{
		Post: domainPostToHTTP(post),
	})
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathInt(r, "courseID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	posts, err := h.boardService.ListPosts(r.Context(), courseID, userIDFrom(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainPostsToHTTP(posts))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathInt(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.boardService.DeletePost(r.Context(), userIDFrom(r.Context()), postID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathInt(r, "postID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	comment, err := h.boardService.CreateComment(r.Context(), &domain.Comment{
		PostID:          postID,
		AuthorID:        userIDFrom(r.Context()),
		Content:         req.Content,
		ParentCommentID: req.ParentCommentID,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateCommentResponse{
		Comment: domainCommentToHTTP(comment),
	})
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathInt(r, "postID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	comments, err := h.boardService.ListComments(r.Context(), postID, userIDFrom(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCommentsToHTTP(comments))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathInt(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.boardService.DeleteComment(r.Context(), userIDFrom(r.Context()), commentID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) TogglePostLike(w http.ResponseWriter, r *http.Request) {
	postID, err := pathInt(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	liked, count, err := h.boardService.TogglePostLike(r.Context(), userIDFrom(r.Context()), postID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LikeResponse{IsLiked: liked, Likes: count})
}

func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathInt(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	liked, count, err := h.boardService.ToggleCommentLike(r.Context(), userIDFrom(r.Context()), commentID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LikeResponse{IsLiked: liked, Likes: count})
}
