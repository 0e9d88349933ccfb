package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/blogem/audit-gateway/activity"
	"github.com/blogem/audit-gateway/authenticator"
	"github.com/blogem/audit-gateway/cache"
	"github.com/blogem/audit-gateway/config"
	"github.com/blogem/audit-gateway/controllers"
	"github.com/blogem/audit-gateway/database"
	"github.com/blogem/audit-gateway/metrics"
	gatewaymw "github.com/blogem/audit-gateway/middleware"
	"github.com/blogem/audit-gateway/repositories"
	"github.com/blogem/audit-gateway/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("gateway stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Open(ctx, cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize metrics and cache
	m := metrics.New(prometheus.NewRegistry())
	provider, err := cache.NewMemoryProvider(cfg.Cache.MaxEntries)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	facade := cache.NewFacade(provider, cfg.Cache.SlidingWindow, m)

	// Initialize services
	srvs := services.NewServices(repos, services.Options{
		Cache:    facade,
		RoleTTL:  cfg.Cache.RoleTTL,
		Reporter: services.NewLogReporter(logger, m),
		Metrics:  m,
		Logger:   logger,
	})
	if err := srvs.Roles.Warm(ctx); err != nil {
		logger.Warn("role cache warm-up failed", "error", err)
	}

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, db, cfg.Auth.UserIDClaim)

	r, err := setupRouter(ctx, cfg, logger, ctrl, srvs, m)
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("audit gateway starting", "addr", cfg.Server.Addr, "auth_mode", cfg.Auth.Mode, "database", cfg.Database.Path)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// setupRouter configures middleware and routes. Identity middleware runs
// before the audit interceptor so the caller is known when it records.
func setupRouter(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	ctrl *controllers.Controllers,
	srvs *services.Services,
	m *metrics.Metrics,
) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	if cfg.Server.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(gatewaymw.RequestID)
	r.Use(middleware.Logger)

	var auth authenticator.Provider
	switch cfg.Auth.Mode {
	case config.AuthModeSession:
		sessionHandler, err := session.Sessioner(session.Options{
			Provider:    "memory",
			CookieName:  "audit_session",
			Secure:      cfg.Auth.SecureCookies,
			Gclifetime:  3600,
			Maxlifetime: 3600,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize session: %w", err)
		}
		r.Use(sessionHandler)
		r.Use(gatewaymw.SessionIdentity)

		auth, err = authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.Auth.OIDC.Domain,
			ClientID:     cfg.Auth.OIDC.ClientID,
			ClientSecret: cfg.Auth.OIDC.ClientSecret,
			CallbackURL:  cfg.Auth.OIDC.CallbackURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenID provider: %w", err)
		}
	default:
		r.Use(gatewaymw.BearerIdentity(gatewaymw.BearerConfig{
			Secret:      []byte(cfg.Auth.JWTSecret),
			Issuer:      cfg.Auth.JWTIssuer,
			Audience:    cfg.Auth.JWTAudience,
			UserIDClaim: cfg.Auth.UserIDClaim,
		}, logger))
	}

	var ignore []string
	if len(cfg.Audit.IgnorePaths) > 0 {
		ignore = cfg.Audit.IgnorePaths
	}
	endpoints := gatewaymw.NewEndpoints()
	interceptor := gatewaymw.NewAuditInterceptor(endpoints, activity.NewResolver(ignore), srvs.Audit, m, logger)
	r.Use(interceptor.Handler)

	r.Handle("/metrics", m.Handler())
	ctrl.RegisterRoutes(r, endpoints, auth)

	return r, nil
}
