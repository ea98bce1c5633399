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
	"time"

	"golang.org/x/crypto/bcrypt"

	"teamcalendar/config"
	_ "teamcalendar/docs"
	"teamcalendar/internal/adapters/auth"
	deliveryhttp "teamcalendar/internal/delivery/http"
	"teamcalendar/internal/delivery/http/controllers"
	"teamcalendar/internal/delivery/http/middleware"
	"teamcalendar/internal/repository/postgres"
	"teamcalendar/internal/services"
)

// @title Team Calendar API
// @version 1.0
// @description Employees, teams and calendar events behind a shared-password session.
// @BasePath /
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqlDB, err := postgres.Open(ctx, cfg.DBUrl, postgres.Options{
		MaxOpenConns: cfg.DBMaxOpenConns,
		RetryDelay:   cfg.DBConnectRetryDelay,
	}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := postgres.Migrate(sqlDB); err != nil {
		return err
	}

	db := postgres.NewDB(sqlDB)
	txManager, err := postgres.NewTransactionManager(sqlDB)
	if err != nil {
		return fmt.Errorf("create transaction manager: %w", err)
	}

	// Repositories
	employeeRepo := postgres.NewEmployeeRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	credentialRepo := postgres.NewCredentialRepository(db)

	// Services
	employeeService := services.NewEmployeeService(employeeRepo, cfg.ServiceTimeout)
	teamService := services.NewTeamService(teamRepo, cfg.ServiceTimeout)
	eventService := services.NewEventService(eventRepo, txManager, cfg.ServiceTimeout)
	authService := services.NewAuthService(credentialRepo, txManager, auth.NewBcryptHasher(bcrypt.DefaultCost), cfg.ServiceTimeout)

	if err := authService.EnsureCredential(ctx, cfg.DefaultPassword); err != nil {
		return err
	}

	sessions := middleware.NewCookieSessionStore(
		auth.NewJWTSessionCodec(cfg.SessionSecret, cfg.SessionTTL),
		cfg.Production(),
		logger,
	)

	router := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Employees: controllers.NewEmployeeController(logger, employeeService),
		Teams:     controllers.NewTeamController(logger, teamService),
		Events:    controllers.NewEventController(logger, eventService),
		Auth:      controllers.NewAuthController(logger, authService, sessions),
		Health:    controllers.NewHealthController(logger, db),
	}, sessions, logger)

	var handler http.Handler = router
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", server.Addr), slog.String("env", cfg.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shut down server: %w", err)
		}
		return nil
	case err := <-serverErrors:
		return fmt.Errorf("serve: %w", err)
	}
}
