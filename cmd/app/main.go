package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/coursehub/backend/internal/config"
	"github.com/coursehub/backend/internal/db"
	"github.com/coursehub/backend/internal/handler"
	"github.com/coursehub/backend/internal/handler/server"
	"github.com/coursehub/backend/internal/logger"
	"github.com/coursehub/backend/internal/repository/postgres"
	"github.com/coursehub/backend/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	database := db.MustLoad(cfg)
	log.Info("connected to database")
	defer database.Close()

	userRepo := postgres.NewUserRepository(database)
	courseRepo := postgres.NewCourseRepository(database)
	boardRepo := postgres.NewBoardRepository(database)
	recruitRepo := postgres.NewRecruitRepository(database)
	scheduleRepo := postgres.NewScheduleRepository(database)
	availabilityRepo := postgres.NewAvailabilityRepository(database)

	tokens := service.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	courseService := service.NewCourseService(courseRepo, userRepo)
	boardService := service.NewBoardService(boardRepo)
	recruitService := service.NewRecruitService(recruitRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)
	availabilityService := service.NewAvailabilityService(
		availabilityRepo,
		recruitRepo,
		userRepo,
		int(cfg.SlotGranularity.Minutes()),
	)

	h := handler.NewHandler(
		authService,
		userService,
		courseService,
		boardService,
		recruitService,
		scheduleService,
		availabilityService,
		tokens,
		log,
	)
	srv := server.NewServer(h, cfg.HTTPAddr, log)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
}
