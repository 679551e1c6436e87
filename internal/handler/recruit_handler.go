package handler

import (
	"encoding/json"
	"net/http"

	"github.com/coursehub/backend/internal/domain"
)

func (h *Handler) CreateRecruitment(w http.ResponseWriter, r *http.Request) {
	var req CreateRecruitmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	recruitment, err := h.recruitService.Create(r.Context(), &domain.Recruitment{
		CourseID:    req.CourseID,
		AuthorID:    userIDFrom(r.Context()),
		Title:       req.Title,
		Description: req.Description,
		MaxMembers:  req.MaxMembers,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateRecruitmentResponse{
		Recruitment: domainRecruitmentToHTTP(recruitment),
	})
}

func (h *Handler) ListRecruitments(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathInt(r, "courseID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	recruitments, err := h.recruitService.ListByCourse(r.Context(), courseID, userIDFrom(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainRecruitmentsToHTTP(recruitments))
}

func (h *Handler) DeleteRecruitment(w http.ResponseWriter, r *http.Request) {
	recruitmentID, err := pathInt(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.recruitService.Delete(r.Context(), userIDFrom(r.Context()), recruitmentID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ToggleRecruitmentJoin(w http.ResponseWriter, r *http.Request) {
	recruitmentID, err := pathInt(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	recruitment, err := h.recruitService.ToggleJoin(r.Context(), userIDFrom(r.Context()), recruitmentID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CreateRecruitmentResponse{
		Recruitment: domainRecruitmentToHTTP(recruitment),
	})
}
