package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/iwvelando/debt-capacity/internal/cache"
	"github.com/iwvelando/debt-capacity/pkg/constants"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewCache builds the response cache selected by cfg. The returned close
// function releases any backend connections.
func NewCache(cfg CacheConfig) (cache.Repository, func() error, error) {
	noClose := func() error { return nil }

	switch cfg.Backend {
	case "", constants.CacheBackendNone:
		return cache.Nop{}, noClose, nil
	case constants.CacheBackendMemory:
		return cache.NewMemory(cfg.TTLDuration()), noClose, nil
	case constants.CacheBackendRedis:
		r := cache.NewRedis(cfg.RedisAddress, cfg.TTLDuration())
		return r, r.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
}

// Serve runs the HTTP server until ctx is cancelled, then drains outstanding
// requests.
func Serve(ctx context.Context, logger *zap.Logger, cfg *Config, version string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	repo, closeCache, err := NewCache(cfg.Cache)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCache(); err != nil {
			logger.Warn("failed to close cache",
				zap.String("op", "server.Serve"),
				zap.Error(err),
			)
		}
	}()

	if r, ok := repo.(*cache.Redis); ok {
		if err := r.Ping(ctx); err != nil {
			logger.Warn("redis cache unreachable; analyses will be recomputed",
				zap.String("op", "server.Serve"),
				zap.String("address", cfg.Cache.RedisAddress),
				zap.Error(err),
			)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           NewHandler(logger, cfg.UploadSizeBytes(), version, repo),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "server.Serve"),
			zap.String("address", cfg.Address),
			zap.String("cache", cfg.Cache.Backend),
			zap.Int64("maxUploadSize", cfg.UploadSizeBytes()),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutdown initiated", zap.String("op", "server.Serve"))

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed",
				zap.String("op", "server.Serve"),
				zap.Error(err),
			)
			return srv.Close()
		}
	}

	return nil
}
