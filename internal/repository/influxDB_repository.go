package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"CapIot.timestream/internal/models"
	"CapIot.timestream/internal/query"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	fluxquery "github.com/influxdata/influxdb-client-go/v2/api/query"
	"github.com/influxdata/influxdb-client-go/v2/domain"
)

// timestreamTimeLayout matches how Timestream prints timestamps, so both
// backends hand out the same time strings.
const timestreamTimeLayout = "2006-01-02 15:04:05.000000000"

// allColumns is the column order used for select-all statements.
var allColumns = []string{query.ColumnID, query.ColumnMeasureName, query.ColumnTime, query.ColumnMeasureValue}

// InfluxDBRepository serves telemetry from InfluxDB 2.x.
type InfluxDBRepository struct {
	client influxdb2.Client
	org    string
}

// NewInfluxDBRepository creates a new InfluxDBRepository.
func NewInfluxDBRepository(url, token, org string) *InfluxDBRepository {
	return &InfluxDBRepository{
		client: influxdb2.NewClient(url, token),
		org:    org,
	}
}

// Ping checks the server health endpoint.
func (r *InfluxDBRepository) Ping(ctx context.Context) error {
	health, err := r.client.Health(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to InfluxDB: %w", err)
	}
	if health.Status != domain.HealthCheckStatusPass {
		msg := ""
		if health.Message != nil {
			msg = *health.Message
		}
		return fmt.Errorf("InfluxDB health check failed: %s", msg)
	}
	return nil
}

// Query runs the Flux rendering of stmt and projects each record onto the statement's columns.
func (r *InfluxDBRepository) Query(ctx context.Context, stmt query.Statement) (*models.ResultSet, error) {
	flux := stmt.Flux()
	slog.Debug("Executing InfluxDB query", "query", flux)

	result, err := r.client.QueryAPI(r.org).Query(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("error querying InfluxDB: %w", err)
	}
	defer result.Close()

	columns := stmt.ColumnNames()
	if columns == nil {
		columns = allColumns
	}

	rs := &models.ResultSet{Columns: columns, Rows: []models.Row{}}
	for result.Next() {
		rs.Rows = append(rs.Rows, recordRow(columns, result.Record()))
	}
	if result.Err() != nil {
		return nil, fmt.Errorf("error querying InfluxDB: %w", result.Err())
	}
	return rs, nil
}

// Close releases the client's HTTP resources.
func (r *InfluxDBRepository) Close() {
	r.client.Close()
}

func recordRow(columns []string, rec *fluxquery.FluxRecord) models.Row {
	data := make([]models.Datum, len(columns))
	for i, col := range columns {
		switch col {
		case query.ColumnTime:
			data[i] = models.ScalarDatum(rec.Time().UTC().Format(timestreamTimeLayout))
		case query.ColumnMeasureName:
			data[i] = models.ScalarDatum(rec.Field())
		case query.ColumnValue, query.ColumnMeasureValue:
			data[i] = toDatum(rec.Value())
		default:
			data[i] = toDatum(rec.ValueByKey(col))
		}
	}
	return models.Row{Data: data}
}

func toDatum(v interface{}) models.Datum {
	switch v := v.(type) {
	case nil:
		return models.NullDatum()
	case string:
		return models.ScalarDatum(v)
	case int64:
		return models.ScalarDatum(strconv.FormatInt(v, 10))
	case uint64:
		return models.ScalarDatum(strconv.FormatUint(v, 10))
	case float64:
		return models.ScalarDatum(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		return models.ScalarDatum(strconv.FormatBool(v))
	case time.Time:
		return models.ScalarDatum(v.UTC().Format(timestreamTimeLayout))
	default:
		return models.ScalarDatum(fmt.Sprint(v))
	}
}
