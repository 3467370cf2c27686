package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medimanager/internal/config"
	"medimanager/internal/middleware"
	"medimanager/internal/platform/logger"
	"medimanager/internal/ports/auth"
	"medimanager/internal/router"
)

// @title MediManager API
// @version 1.0
// @description API para llevar el registro personal de medicamentos y tomas.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.Logging.App,
	})

	// os.Exit recién acá: run cierra store y sesiones con sus defers.
	if err := run(cfg, log); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := router.OpenStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("storage init failed", map[string]any{"driver": cfg.Storage.Driver, "error": err})
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("storage close failed", map[string]any{"error": err})
		}
	}()

	sess, closeSessions, err := router.OpenSessions(ctx, cfg.Auth)
	if err != nil {
		log.Error("session store init failed", map[string]any{"store": cfg.Auth.SessionStore, "error": err})
		return err
	}
	defer closeSessions()

	if cfg.Auth.DevMode {
		log.Warn("AUTH_DEV_MODE enabled: X-Debug-User-ID is accepted without token", nil)
	}

	limiter := middleware.NewRateLimiter(cfg.Auth.LoginRatePerSec, cfg.Auth.LoginBurst, log)
	go sweep(ctx, log, limiter, sess, time.Minute)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Store:          store,
			Sessions:       sess,
			Logger:         log,
			DevMode:        cfg.Auth.DevMode,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			LoginLimiter:   limiter,
			DisableMetrics: !cfg.Server.MetricsEnabled,
			DisableSwagger: !cfg.Server.SwaggerEnabled,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":     srv.Addr,
			"storage":  cfg.Storage.Driver,
			"sessions": cfg.Auth.SessionStore,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error("server error", map[string]any{"error": err})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err})
		return err
	}
	return nil
}

// sessionSweeper lo implementan los stores que no vencen solos (memoria).
type sessionSweeper interface {
	Cleanup() int
}

// sweep libera limiters de IPs inactivas y sesiones vencidas que nadie volvió a usar.
func sweep(ctx context.Context, log logger.Logger, rl *middleware.RateLimiter, sess auth.SessionStore, every time.Duration) {
	sweeper, _ := sess.(sessionSweeper)

	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			rl.Cleanup(10 * time.Minute)
			if sweeper != nil {
				if n := sweeper.Cleanup(); n > 0 {
					log.Debug("expired sessions purged", map[string]any{"count": n})
				}
			}
		}
	}
}
