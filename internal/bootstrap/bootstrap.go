// Package bootstrap wires configuration, logging, the query client and the
// handlers. It runs once per process: at Lambda cold start or server start.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"CapIot.timestream/internal/config"
	"CapIot.timestream/internal/controller"
	"CapIot.timestream/internal/logger"
	"CapIot.timestream/internal/repository"
	"CapIot.timestream/internal/service"
)

// App is the process-wide state shared by every invocation.
type App struct {
	Config     config.Config
	Logger     *slog.Logger
	Repository repository.Repository
	Controller *controller.TelemetryController
}

// Load reads the configuration and builds the App with the configured backend.
func Load(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	log := logger.InitLogger(cfg)

	repo, err := repository.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating %s repository: %w", cfg.Backend, err)
	}
	return New(cfg, log, repo), nil
}

// New wires an App around an existing repository.
func New(cfg config.Config, log *slog.Logger, repo repository.Repository) *App {
	svc := service.NewTelemetryService(repo, repository.SourceFor(cfg))
	return &App{
		Config:     cfg,
		Logger:     log,
		Repository: repo,
		Controller: controller.NewTelemetryController(svc, log),
	}
}

// Close releases the repository.
func (a *App) Close() {
	a.Repository.Close()
}
