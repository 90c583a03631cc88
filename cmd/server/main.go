package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-be/internal/catalog"
	"portfolio-be/internal/config"
	"portfolio-be/internal/handlers"
	"portfolio-be/internal/logger"
	"portfolio-be/internal/middleware"

	"go.uber.org/zap"
)

var (
	openRepositoryFunc = catalog.OpenRepository
	startServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, closeCatalog, err := newServer(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCatalog()

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.L().Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	logger.L().Info("🚀 portfolio API running",
		zap.String("addr", srv.Addr),
		zap.String("catalog_source", cfg.CatalogSource),
		zap.Bool("admin_enabled", cfg.AdminEnabled()),
	)

	if err := startServerFunc(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newServer loads the catalog and wires the HTTP stack. The rate limiter's
// janitor stops with ctx.
func newServer(ctx context.Context, cfg *config.Config) (http.Handler, func(), error) {
	repo, closeCatalog, err := openRepositoryFunc(cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := catalog.NewService(repo)
	if err := svc.Reload(ctx); err != nil {
		closeCatalog()
		return nil, nil, err
	}

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	go limiter.Run(ctx)

	return handlers.SetupRoutes(cfg, svc, limiter), closeCatalog, nil
}
