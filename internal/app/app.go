// Package app wires configuration, storage and the HTTP server together
// for the server and CLI entrypoints.
package app

import (
	"context"
	"fmt"

	"rentmate/internal/adapters/http/middleware"
	"rentmate/internal/adapters/http/routes"
	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/config"
	"rentmate/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the long-lived dependencies of a RentMate process
type App struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *gorm.DB
	Store  *store.DocumentStore
}

// New opens the session database and the document store and seeds any
// collection that does not exist yet
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := config.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := config.ConnectSessionDB(cfg, log)
	if err != nil {
		return nil, err
	}

	st, err := store.NewDocumentStore(cfg.Storage.DataDir, store.NewSessionSlot(db), log)
	if err != nil {
		_ = config.CloseDatabase(db)
		return nil, err
	}

	if err := config.NewSeeder(st, log).Run(ctx); err != nil {
		_ = config.CloseDatabase(db)
		return nil, fmt.Errorf("failed to seed data: %w", err)
	}

	return &App{Config: cfg, Logger: log, DB: db, Store: st}, nil
}

// Close releases the session database and flushes the logger
func (a *App) Close() error {
	err := config.CloseDatabase(a.DB)
	_ = a.Logger.Sync()
	return err
}

// HTTP builds the Fiber application with middleware and routes mounted
func (a *App) HTTP(ctx context.Context) (*fiber.App, *services.AuthService) {
	server := fiber.New(fiber.Config{
		AppName:      "RentMate API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	middleware.Setup(server, a.Config, a.Logger)
	authService := routes.Setup(ctx, server, a.Store, a.DB, a.Config, a.Logger)

	return server, authService
}

// Serve runs the HTTP server and the rent reminder until ctx is cancelled
func (a *App) Serve(ctx context.Context) error {
	server, _ := a.HTTP(ctx)

	if a.Config.Reminder.Enabled {
		reminder := services.NewRentReminderService(
			repositories.NewPropertyRepository(a.Store),
			repositories.NewPaymentRepository(a.Store),
			a.Logger,
		)
		if err := reminder.Start(a.Config.Reminder.Schedule); err != nil {
			return err
		}
		defer reminder.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server starting",
			zap.String("port", a.Config.Port),
			zap.String("mode", a.Config.AppMode),
			zap.String("data_dir", a.Store.Dir()))
		errCh <- server.Listen(":" + a.Config.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		a.Logger.Info("shutting down server")
		if err := server.Shutdown(); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		a.Logger.Info("server stopped gracefully")
		return nil
	}
}
