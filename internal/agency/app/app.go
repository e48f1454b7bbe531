package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/brindlelabs/agencyhub/internal/agency/http"
	"github.com/brindlelabs/agencyhub/internal/agency/identity"
	"github.com/brindlelabs/agencyhub/internal/agency/service"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/brindlelabs/agencyhub/internal/agency/store/drivers/sqlite"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the agency service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	identity identity.Provider

	// Services
	agencyService       *service.AgencyService
	userService         *service.UserService
	invitationService   *service.InvitationService
	teamService         *service.TeamService
	notificationService *service.NotificationService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "agency-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initIdentity(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("agency service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down agency service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("agency service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initIdentity builds the session verifier for the configured provider mode.
func (app *Application) initIdentity() error {
	switch app.cfg.IdentityMode {
	case "hosted":
		if app.cfg.IdentityJWKSURL == "" || app.cfg.IdentityAPIURL == "" {
			return fmt.Errorf("hosted identity mode requires IDENTITY_JWKS_URL and IDENTITY_API_URL")
		}
		app.identity = identity.NewHostedProvider(identity.HostedConfig{
			Issuer:  app.cfg.IdentityIssuer,
			JWKSURL: app.cfg.IdentityJWKSURL,
			APIURL:  app.cfg.IdentityAPIURL,
			APIKey:  app.cfg.IdentityAPIKey,
		})
		app.logger.Info("identity provider configured", "mode", "hosted", "issuer", app.cfg.IdentityIssuer)
	case "static":
		if app.cfg.IdentitySessionSecret == "" {
			return fmt.Errorf("static identity mode requires IDENTITY_SESSION_SECRET")
		}
		app.identity = identity.NewStaticProvider(
			app.cfg.IdentityIssuer,
			[]byte(app.cfg.IdentitySessionSecret),
		)
		app.logger.Info("identity provider configured", "mode", "static", "issuer", app.cfg.IdentityIssuer)
	default:
		return fmt.Errorf("unknown identity mode %q", app.cfg.IdentityMode)
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.agencyService = &service.AgencyService{
		Store: app.db,
		Token: app.cfg.ProvisionToken,
	}
	app.userService = &service.UserService{Store: app.db}
	app.teamService = &service.TeamService{Store: app.db}
	app.notificationService = &service.NotificationService{Store: app.db}
	app.invitationService = &service.InvitationService{
		Store:         app.db,
		Identity:      app.identity,
		Team:          app.teamService,
		Notifications: app.notificationService,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.NotificationRetention,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.identity,
		app.cfg.SignInURL,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AgencyService = app.agencyService
	router.UserService = app.userService
	router.InvitationService = app.invitationService
	router.TeamService = app.teamService
	router.NotificationService = app.notificationService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
