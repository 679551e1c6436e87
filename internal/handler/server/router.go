package server

import (
	"net/http"

	"github.com/coursehub/backend/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)

	mux.HandleFunc("GET /profile", h.WithAuth(h.GetProfile))
	mux.HandleFunc("PUT /profile", h.WithAuth(h.UpdateProfile))

	mux.HandleFunc("POST /courses", h.WithAuth(h.CreateCourse))
	mux.HandleFunc("GET /courses/my", h.WithAuth(h.ListMyCourses))
	mux.HandleFunc("GET /courses/all", h.WithAuth(h.ListAllCourses))
	mux.HandleFunc("GET /courses/enrolled", h.WithAuth(h.ListEnrolledCourses))
	mux.HandleFunc("DELETE /courses/{id}", h.WithAuth(h.DeleteCourse))
	mux.HandleFunc("POST /courses/{id}/enroll", h.WithAuth(h.EnrollCourse))

	mux.HandleFunc("POST /board", h.WithAuth(h.CreatePost))
	mux.HandleFunc("GET /board/course/{courseID}", h.WithAuth(h.ListPosts))
	mux.HandleFunc("DELETE /board/post/{id}", h.WithAuth(h.DeletePost))
	mux.HandleFunc("GET /board/post/{postID}/comments", h.WithAuth(h.ListComments))
	mux.HandleFunc("POST /board/post/{postID}/comments", h.WithAuth(h.CreateComment))
	mux.HandleFunc("DELETE /board/comments/{id}", h.WithAuth(h.DeleteComment))
	mux.HandleFunc("POST /board/post/{id}/like", h.WithAuth(h.TogglePostLike))
	mux.HandleFunc("POST /board/comment/{id}/like", h.WithAuth(h.ToggleCommentLike))

	mux.HandleFunc("POST /recruit", h.WithAuth(h.CreateRecruitment))
	mux.HandleFunc("GET /recruit/course/{courseID}", h.WithAuth(h.ListRecruitments))
	mux.HandleFunc("DELETE /recruit/{id}", h.WithAuth(h.DeleteRecruitment))
	mux.HandleFunc("POST /recruit/{id}/join", h.WithAuth(h.ToggleRecruitmentJoin))

	mux.HandleFunc("POST /schedule", h.WithAuth(h.CreateSchedule))
	mux.HandleFunc("GET /schedule", h.WithAuth(h.ListSchedules))

	mux.HandleFunc("POST /availability", h.WithAuth(h.AddAvailability))
	mux.HandleFunc("GET /availability", h.WithAuth(h.ListAvailability))
	mux.HandleFunc("DELETE /availability/{id}", h.WithAuth(h.DeleteAvailability))
	mux.HandleFunc("GET /availability/team/{teamID}", h.WithAuth(h.GetTeamAvailability))
}
