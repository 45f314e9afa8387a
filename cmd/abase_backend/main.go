package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/SscSPs/abase_form_kit/internal/adapters/viacep"
	portsrepo "github.com/SscSPs/abase_form_kit/internal/core/ports/repositories"
	"github.com/SscSPs/abase_form_kit/internal/core/services"
	"github.com/SscSPs/abase_form_kit/internal/handlers"
	"github.com/SscSPs/abase_form_kit/internal/middleware"
	"github.com/SscSPs/abase_form_kit/internal/platform/config"
	"github.com/SscSPs/abase_form_kit/internal/repositories/database/pgsql"
	"github.com/SscSPs/abase_form_kit/internal/repositories/memory"
	"github.com/SscSPs/abase_form_kit/internal/utils"
	"github.com/SscSPs/abase_form_kit/internal/validation"
	"github.com/SscSPs/abase_form_kit/pkg/database"
	"github.com/SscSPs/abase_form_kit/pkg/logger"
	"github.com/SscSPs/abase_form_kit/pkg/shutdown"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title ABASE Form Kit API
// @version 1.0
// @description BRL money formatting, CEP autofill, PIX key checks and UI preferences for the ABASE registration forms.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	env := "development"
	if cfg.IsProduction {
		env = "production"
	}
	log := logger.New(logger.Options{Service: "abase_backend", Env: env, Level: cfg.LogLevel})

	ctx, stop := shutdown.WithSignals(context.Background())
	defer stop()

	if err := validation.RegisterWithGin(); err != nil {
		return err
	}

	directory, err := viacep.NewClient(viacep.Config{
		BaseURL:   cfg.ViaCEPBaseURL,
		Timeout:   cfg.ViaCEPTimeout,
		CacheSize: cfg.CEPCacheSize,
	}, log)
	if err != nil {
		return err
	}

	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
			return err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, log)
		if err != nil {
			return err
		}
		defer database.ClosePgxPool(dbPool, log)
		log.Info("Database connection pool established.")
		repos = pgsql.NewRepositoryProvider(dbPool, directory)
	} else {
		log.Warn("No database configured, keeping preferences in memory.")
		repos = portsrepo.RepositoryProvider{
			PreferenceRepo:   memory.NewPreferenceRepository(),
			AddressDirectory: directory,
		}
	}

	serviceContainer, err := services.NewServiceContainer(cfg, repos)
	if err != nil {
		return err
	}

	cepLimiter, err := middleware.NewRateLimiter(cfg.CEPRateLimit)
	if err != nil {
		return err
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, log)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(log),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.PosthogMiddleware(posthogClient),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, cepLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("Server stopped")
	return nil
}
