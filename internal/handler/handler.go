package handler

import (
	"github.com/coursehub/backend/internal/service"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	authService         service.AuthService
	userService         service.UserService
	courseService       service.CourseService
	boardService        service.BoardService
	recruitService      service.RecruitService
	scheduleService     service.ScheduleService
	availabilityService service.AvailabilityService
	tokens              *service.TokenManager
	validate            *validator.Validate
	logger              *zap.Logger
}

func NewHandler(
	authService service.AuthService,
	userService service.UserService,
	courseService service.CourseService,
	boardService service.BoardService,
	recruitService service.RecruitService,
	scheduleService service.ScheduleService,
	availabilityService service.AvailabilityService,
	tokens *service.TokenManager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService:         authService,
		userService:         userService,
		courseService:       courseService,
		boardService:        boardService,
		recruitService:      recruitService,
		scheduleService:     scheduleService,
		availabilityService: availabilityService,
		tokens:              tokens,
		validate:            validator.New(),
		logger:              logger,
	}
}
