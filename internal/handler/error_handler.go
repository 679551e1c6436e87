package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coursehub/backend/internal/domain"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{
				Code:    "BAD_REQUEST",
				Message: validationErrs.Error(),
			},
		})
		return
	}

	h.logger.Error("request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "BAD_REQUEST", "USER_EXISTS", "COURSE_EXISTS", "ALREADY_ENROLLED", "TEAM_FULL":
		return http.StatusBadRequest
	case "UNAUTHORIZED":
		return http.StatusUnauthorized
	case "FORBIDDEN":
		return http.StatusForbidden
	case "NOT_FOUND":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
