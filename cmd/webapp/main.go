package main

import (
	"fmt"
	"log"
	"net/http"

	authController "legendidle/internal/auth/controller"
	authRepository "legendidle/internal/auth/repository"
	authUsecase "legendidle/internal/auth/usecase"

	gameController "legendidle/internal/game/controller"
	gameRepository "legendidle/internal/game/repository"
	gameUsecase "legendidle/internal/game/usecase"

	"legendidle/domain"
	"legendidle/internal/service/config"
	"legendidle/internal/service/logger"
	"legendidle/internal/service/middleware"
	"legendidle/internal/service/router"
	"legendidle/internal/service/session"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		if err := logger.SyncLoggers(); err != nil {
			log.Printf("Failed to sync loggers: %v", err)
		}
	}()

	db := middleware.DbConnect(cfg)
	if err := db.AutoMigrate(&domain.User{}, &domain.SkillLevel{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var sessionStore session.Store = session.NewMemoryStore()
	if cfg.RedisEndpoint != "" {
		sessionStore = session.NewRedisStore(middleware.InitRedis(cfg))
	}
	sessions := session.NewService(sessionStore)

	userRepository := authRepository.NewUserRepository(db)
	authUseCase := authUsecase.NewAuthUsecase(userRepository)
	authHandler := authController.NewAuthHandler(authUseCase, sessions)

	progressRepository := gameRepository.NewProgressRepository(db)
	gameUseCase := gameUsecase.NewGameUsecase(progressRepository)
	gameHandler := gameController.NewGameHandler(gameUseCase, sessions)

	mainRouter := router.SetUpRoutes(authHandler, gameHandler)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)
	mainRouter.Use(middleware.RecoverMiddleware)
	mainRouter.Use(middleware.SessionMiddleware(sessions))

	fmt.Printf("LegendIdle server listening on %s\n", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, mainRouter); err != nil {
		fmt.Printf("Error on starting server: %s", err)
	}
}
