// Package repositorytest provides an in-memory repository.Repository for tests.
package repositorytest

import (
	"context"
	"sync"

	"CapIot.timestream/internal/models"
	"CapIot.timestream/internal/query"
)

// Fake returns Result (or Err) for every statement and records what it was asked.
type Fake struct {
	mu         sync.Mutex
	Result     *models.ResultSet
	Err        error
	Panic      any
	Statements []query.Statement
	Closed     bool
}

// Query records stmt and returns the canned answer.
func (f *Fake) Query(_ context.Context, stmt query.Statement) (*models.ResultSet, error) {
	f.mu.Lock()
	f.Statements = append(f.Statements, stmt)
	f.mu.Unlock()

	if f.Panic != nil {
		panic(f.Panic)
	}
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Result == nil {
		return &models.ResultSet{Rows: []models.Row{}}, nil
	}
	return f.Result, nil
}

// Close marks the fake closed.
func (f *Fake) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
}

// Calls returns how many statements were run.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Statements)
}

// Rows builds a result set of scalar cells.
func Rows(columns []string, rows ...[]string) *models.ResultSet {
	rs := &models.ResultSet{Columns: columns, Rows: make([]models.Row, 0, len(rows))}
	for _, values := range rows {
		data := make([]models.Datum, len(values))
		for i, v := range values {
			data[i] = models.ScalarDatum(v)
		}
		rs.Rows = append(rs.Rows, models.Row{Data: data})
	}
	return rs
}
