package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Altraaa/creavibes-panel-api/config"
	"github.com/Altraaa/creavibes-panel-api/db"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/handler"
	repo "github.com/Altraaa/creavibes-panel-api/internal/auth/repository/postgres"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/service"
	"github.com/Altraaa/creavibes-panel-api/internal/user"
	"github.com/Altraaa/creavibes-panel-api/internal/volunteer"
	"github.com/gofiber/fiber/v2"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to set up database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := repo.NewUserRepository(pool)
	tokenRepo := repo.NewTokenRepository(pool)
	auditRepo := repo.NewAuditRepository(pool)

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokenService := service.NewTokenService(tokenRepo)
	recorder := service.NewLoginRecorder(auditRepo, logger)
	sessionService := service.NewSessionService(userRepo, hasher, tokenService, recorder, cfg, logger)

	userService := user.NewService(user.NewPostgresRepository(pool), hasher, logger)
	volunteerService := volunteer.NewService(volunteer.NewPostgresRepository(pool), logger)

	authHandler := handler.NewAuthHandler(sessionService)
	authMiddleware := handler.NewAuthMiddleware(tokenService, userRepo)
	userHandler := user.NewHandler(userService)
	volunteerHandler := volunteer.NewHandler(volunteerService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, authMiddleware, userHandler, volunteerHandler)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
