package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/integra/health-sport-site/internal/api"
	"github.com/integra/health-sport-site/internal/api/handler"
	"github.com/integra/health-sport-site/internal/api/metrics"
	"github.com/integra/health-sport-site/internal/core/service"
	"github.com/integra/health-sport-site/internal/infrastructure/db/flatfile"
	redisstore "github.com/integra/health-sport-site/internal/infrastructure/db/redis"
	"github.com/integra/health-sport-site/internal/infrastructure/session"
	"github.com/integra/health-sport-site/internal/pkg/config"
)

const (
	shutdownTimeout        = 10 * time.Second
	sessionCleanupInterval = 10 * time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context(), cfg, log)
	},
}

func runServe(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := map[string]handler.Check{
		"catalog":  handler.FileCheck(cfg.Data.ServicesFile),
		"contacts": handler.DirCheck(cfg.Data.ContactsFile),
	}

	var store session.Store
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return fmt.Errorf("session backend: %w", err)
		}
		defer rdb.Close()
		store = redisstore.NewSessionStore(rdb)
		checks["redis"] = handler.RedisCheck(rdb)
	default:
		mem := session.NewMemoryStore()
		mem.StartCleanupRoutine(sessionCleanupInterval)
		store = mem
	}
	defer store.Close()

	if cfg.Admin.User == "" || cfg.Admin.Pass == "" {
		log.Warn().Msg("ADMIN_USER or ADMIN_PASS not set, admin login is disabled")
	}
	if cfg.Session.Secret == "secret" && !cfg.IsDevelopment() {
		log.Warn().Msg("SESSION_SECRET is the default value")
	}

	catalog := flatfile.NewCatalogReader(cfg.Data.ServicesFile, log,
		flatfile.OnReload(metrics.CatalogReloadsTotal.Inc))
	contacts := flatfile.NewContactRepository(cfg.Data.ContactsFile, log)

	e := api.NewRouter(api.Deps{
		Logger:   log,
		Catalog:  service.NewCatalogService(catalog),
		Contacts: service.NewContactService(contacts, log),
		Auth:     service.NewAuthService(cfg.Admin.User, cfg.Admin.Pass),
		Sessions: session.NewManager(store, session.Config{
			CookieName: cfg.Session.Cookie,
			Secret:     cfg.Session.Secret,
			TTL:        cfg.Session.TTL,
			Secure:     cfg.Session.Secure,
		}, log),
		StaticDir:    cfg.Data.StaticDir,
		HealthChecks: checks,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if cfg.Data.WatchCatalog {
		g.Go(func() error {
			// the site keeps working uncached if the watcher cannot start
			if err := catalog.Watch(gctx); err != nil {
				log.Warn().Err(err).Msg("catalog watcher stopped")
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
