package handler

import (
	"encoding/json"
	"net/http"

	"github.com/coursehub/backend/internal/domain"
	"github.com/coursehub/backend/internal/timegrid"
)

func (h *Handler) AddAvailability(w http.ResponseWriter, r *http.Request) {
	var req AddAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	start, err := timegrid.ParseMinute(req.StartTime)
	if err != nil {
		h.handleError(w, domain.NewBadRequestError("start_time must be HH:MM"))
		return
	}
	end, err := timegrid.ParseMinute(req.EndTime)
	if err != nil {
		h.handleError(w, domain.NewBadRequestError("end_time must be HH:MM"))
		return
	}

	interval, created, err := h.availabilityService.AddInterval(r.Context(), &domain.AvailabilityInterval{
		UserID:      userIDFrom(r.Context()),
		DayOfWeek:   req.DayOfWeek,
		StartMinute: start,
		EndMinute:   end,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, AddAvailabilityResponse{
		Created:      created,
		Availability: domainIntervalToHTTP(interval),
	})
}

func (h *Handler) ListAvailability(w http.ResponseWriter, r *http.Request) {
	intervals, err := h.availabilityService.ListIntervals(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainIntervalsToHTTP(intervals))
}

func (h *Handler) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	intervalID, err := pathInt(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.availabilityService.DeleteInterval(r.Context(), userIDFrom(r.Context()), intervalID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetTeamAvailability(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathInt(r, "teamID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	snapshot, err := h.availabilityService.GetTeamCommonAvailability(r.Context(), teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamAvailabilityToHTTP(snapshot))
}
