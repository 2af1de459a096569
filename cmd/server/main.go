package main

import (
	"FoodTracker/internal/config"
	"FoodTracker/internal/handlers"
	"FoodTracker/internal/middleware"
	"FoodTracker/internal/model"
	"FoodTracker/internal/repo"
	"FoodTracker/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	// создаём регистратор zap: json для продакшена, консольный для разработки
	newLogger := zap.NewDevelopment
	if cfg.LogFormat == "json" {
		newLogger = zap.NewProduction
	}
	logger, err := newLogger()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	sharedRepo := repo.NewFoodRepository(gormDB, model.SharedFoodTable)
	privateRepo := repo.NewFoodRepository(gormDB, model.PrivateFoodTable)
	noteRepo := repo.NewNoteRepository(gormDB)

	tokens := service.NewTokenService(cfg.AuthSecret, cfg.TokenTTL)
	h := handlers.NewHandler(handlers.Services{
		Tokens: tokens,
		Auth:   service.NewAuthService(userRepo, tokens, cfg.StrictTokenIssue),
		Users:  service.NewUserService(userRepo),
		Food:   service.NewFoodService(sharedRepo),
		Pantry: service.NewPantryService(privateRepo),
		Notes:  service.NewNoteService(noteRepo, privateRepo),
	}, sugar, cfg)

	addr := cfg.ListenAddr
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"ListenAddr", cfg.ListenAddr,
		"DatabaseDSN", cfg.DatabaseDSN,
		"TokenTTL", cfg.TokenTTL,
		"StrictTokenIssue", cfg.StrictTokenIssue,
		"CORSOrigins", cfg.CORSOrigins,
	)
	if cfg.AuthSecret == "dev-secret-key" {
		sugar.Warnw("JWT_SECRET is not set, using development secret")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	case <-ctx.Done():
		sugar.Infow("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Graceful shutdown failed", "error", err)
		}
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
