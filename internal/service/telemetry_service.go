package service

import (
	"context"
	"fmt"

	"CapIot.timestream/internal/models"
	"CapIot.timestream/internal/query"
	"CapIot.timestream/internal/repository"
	"CapIot.timestream/internal/validation"
)

// TelemetryService turns validated requests into statements and decodes the results.
type TelemetryService struct {
	repo   repository.Repository
	source query.Source
}

// NewTelemetryService creates a new TelemetryService reading from source.
func NewTelemetryService(repo repository.Repository, source query.Source) *TelemetryService {
	return &TelemetryService{
		repo:   repo,
		source: source,
	}
}

// RecentRows returns the last hour of the telemetry table in the store's native row format.
func (s *TelemetryService) RecentRows(ctx context.Context) ([]models.Row, error) {
	rs, err := s.repo.Query(ctx, query.Recent(s.source))
	if err != nil {
		return nil, err
	}
	return rs.Rows, nil
}

// DeviceReadings returns one device's readings inside window, newest first.
func (s *TelemetryService) DeviceReadings(ctx context.Context, window validation.TimeWindow, id validation.DeviceID) ([]models.Reading, error) {
	rs, err := s.repo.Query(ctx, query.DeviceReadings(s.source, window, id))
	if err != nil {
		return nil, err
	}
	readings, err := decodeReadings(rs, false)
	if err != nil {
		return nil, fmt.Errorf("error decoding readings: %w", err)
	}
	return readings, nil
}

// DevicesReadings returns the readings of every device in ids inside window, newest first.
func (s *TelemetryService) DevicesReadings(ctx context.Context, window validation.TimeWindow, ids []validation.DeviceID) ([]models.Reading, error) {
	rs, err := s.repo.Query(ctx, query.DevicesReadings(s.source, window, ids))
	if err != nil {
		return nil, err
	}
	readings, err := decodeReadings(rs, true)
	if err != nil {
		return nil, fmt.Errorf("error decoding readings: %w", err)
	}
	return readings, nil
}
