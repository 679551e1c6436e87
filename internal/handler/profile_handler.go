package handler

import (
	"encoding/json"
	"net/http"

	"github.com/coursehub/backend/internal/domain"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetProfile(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		Profile: domainUserToHTTP(user),
	})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userIDFrom(r.Context()), req.Name, req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		Profile: domainUserToHTTP(user),
	})
}
