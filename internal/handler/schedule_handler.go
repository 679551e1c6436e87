package handler

import (
	"encoding/json"
	"net/http"

	"github.com/coursehub/backend/internal/domain"
)

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	entry, err := h.scheduleService.Create(r.Context(), &domain.ScheduleEntry{
		UserID:    userIDFrom(r.Context()),
		TeamID:    req.TeamID,
		Title:     req.Title,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainScheduleToHTTP(entry))
}

func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	entries, err := h.scheduleService.ListMine(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]ScheduleResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, domainScheduleToHTTP(entry))
	}
	writeJSON(w, http.StatusOK, result)
}
