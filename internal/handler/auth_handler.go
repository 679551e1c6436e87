package handler

import (
	"encoding/json"
	"net/http"

	"github.com/coursehub/backend/internal/domain"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), req.StudentID, req.Name, req.Password, domain.Role(req.Role))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{
		User: domainUserToHTTP(user),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.StudentID, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		AccessToken: token,
		User:        domainUserToHTTP(user),
	})
}
