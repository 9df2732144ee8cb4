package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elseff/articles-api-sub000/internal/app"
	"github.com/elseff/articles-api-sub000/internal/articles"
	"github.com/elseff/articles-api-sub000/internal/auth"
	"github.com/elseff/articles-api-sub000/internal/observability"
	"github.com/elseff/articles-api-sub000/internal/platform/cache"
	"github.com/elseff/articles-api-sub000/internal/platform/db"
	"github.com/elseff/articles-api-sub000/internal/shared"
	"github.com/elseff/articles-api-sub000/internal/users"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		// Refresh tokens live in Redis, so the API cannot start without it.
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	resolver := shared.ContextResolver{}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	refreshStore := auth.NewRefreshStore(redisClient, cfg.RefreshTokenTTL)

	userRepo := users.NewRepository(dbpool)
	userService := users.NewService(userRepo, resolver)
	userHandler := users.NewHandler(logger, userService)

	articleRepo := articles.NewRepository(dbpool)
	articleService := articles.NewService(articleRepo, resolver)
	articleHandler := articles.NewHandler(logger, articleService)

	authService := auth.NewService(userRepo, tokens, refreshStore)
	authHandler := auth.NewHandler(logger, authService)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		AuthHandler:     authHandler,
		AuthMiddleware:  auth.Middleware(tokens, logger),
		UsersHandler:    userHandler,
		ArticlesHandler: articleHandler,
		Metrics:         metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
