package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/inkwell-press/inkwell/internal/app"
	"github.com/inkwell-press/inkwell/internal/articles"
	"github.com/inkwell-press/inkwell/internal/auth"
	"github.com/inkwell-press/inkwell/internal/authz"
	"github.com/inkwell-press/inkwell/internal/categories"
	"github.com/inkwell-press/inkwell/internal/comments"
	"github.com/inkwell-press/inkwell/internal/platform/cache"
	"github.com/inkwell-press/inkwell/internal/platform/db"
	"github.com/inkwell-press/inkwell/internal/users"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	var principalCache *auth.PrincipalCache
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, principal cache disabled", slog.Any("error", err))
	} else {
		defer func() { _ = redisClient.Close() }()
		principalCache = auth.NewPrincipalCache(redisClient)
	}

	codec := auth.NewCodec(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := auth.NewService(auth.NewRepository(pool), codec, principalCache)

	cookieProfile := auth.DevelopmentCookieProfile()
	if cfg.IsProduction() {
		cookieProfile = auth.ProductionCookieProfile()
	}
	deliverer := auth.NewDeliverer(cookieProfile)

	authzMW := authz.Middleware{Logger: logger}

	var invalidator users.PrincipalInvalidator
	if principalCache != nil {
		invalidator = principalCache
	}
	usersService := users.NewService(users.NewRepository(pool), invalidator)
	articlesService := articles.NewService(articles.NewRepository(pool))
	categoriesService := categories.NewService(categories.NewRepository(pool))
	commentsService := comments.NewService(comments.NewRepository(pool))

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		AuthHandler:       auth.NewHandler(logger, authService, deliverer),
		AuthMiddleware:    auth.Middleware{Service: authService, Logger: logger},
		UsersHandler:      users.NewHandler(logger, usersService),
		ArticlesHandler:   articles.NewHandler(logger, articlesService),
		CategoriesHandler: categories.NewHandler(logger, categoriesService, authzMW),
		CommentsHandler:   comments.NewHandler(logger, commentsService),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("server starting", slog.String("addr", cfg.AppAddr), slog.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
