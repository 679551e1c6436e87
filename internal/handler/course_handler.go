package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coursehub/backend/internal/domain"
)

func pathInt(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, domain.NewBadRequestError(name + " must be an integer")
	}
	return value, nil
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	course, err := h.courseService.CreateCourse(r.Context(), userIDFrom(r.Context()), req.Title, req.Code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateCourseResponse{
		Course: domainCourseToHTTP(course),
	})
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathInt(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.courseService.DeleteCourse(r.Context(), userIDFrom(r.Context()), courseID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListMyCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListMine(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCoursesToHTTP(courses))
}

func (h *Handler) ListAllCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListAll(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCoursesToHTTP(courses))
}

func (h *Handler) EnrollCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathInt(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	enrollment, err := h.courseService.Enroll(r.Context(), userIDFrom(r.Context()), courseID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, EnrollResponse{
		Enrollment: domainEnrollmentToHTTP(enrollment),
	})
}

func (h *Handler) ListEnrolledCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListEnrolled(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCoursesToHTTP(courses))
}
