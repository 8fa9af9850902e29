package repository

import (
	"context"
	"fmt"
	"log/slog"

	"CapIot.timestream/internal/config"
	"CapIot.timestream/internal/models"
	"CapIot.timestream/internal/query"
)

// Repository runs telemetry statements against a time-series store.
// Implementations hold no per-request state and are shared by every invocation.
type Repository interface {
	Query(ctx context.Context, stmt query.Statement) (*models.ResultSet, error)
	Close()
}

// New builds the repository selected by cfg.Backend.
func New(ctx context.Context, cfg config.Config) (Repository, error) {
	switch cfg.Backend {
	case config.BackendTimestream:
		return NewTimestreamRepositoryFromConfig(ctx, cfg.AWSRegion)
	case config.BackendInfluxDB:
		repo := NewInfluxDBRepository(cfg.InfluxDBURL, cfg.InfluxDBToken, cfg.InfluxDBOrg)
		if err := repo.Ping(ctx); err != nil {
			repo.Close()
			return nil, err
		}
		slog.Info("Successfully connected to InfluxDB", "url", cfg.InfluxDBURL)
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown query backend %q", cfg.Backend)
	}
}

// SourceFor names the telemetry table for the configured backend.
func SourceFor(cfg config.Config) query.Source {
	if cfg.Backend == config.BackendInfluxDB {
		return query.Source{Database: cfg.InfluxDBBucket, Table: cfg.TimestreamTable}
	}
	return query.Source{Database: cfg.TimestreamDatabase, Table: cfg.TimestreamTable}
}
