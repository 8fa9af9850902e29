package repository

import (
	"context"
	"fmt"
	"log/slog"

	"CapIot.timestream/internal/models"
	"CapIot.timestream/internal/query"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/timestreamquery"
	"github.com/aws/aws-sdk-go-v2/service/timestreamquery/types"
)

// TimestreamRepository queries Amazon Timestream.
type TimestreamRepository struct {
	client timestreamquery.QueryAPIClient
}

// NewTimestreamRepository wraps an existing Timestream query client.
func NewTimestreamRepository(client timestreamquery.QueryAPIClient) *TimestreamRepository {
	return &TimestreamRepository{client: client}
}

// NewTimestreamRepositoryFromConfig loads the default AWS configuration
// (environment, shared config, Lambda role) and creates the client.
func NewTimestreamRepositoryFromConfig(ctx context.Context, region string) (*TimestreamRepository, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return NewTimestreamRepository(timestreamquery.NewFromConfig(cfg)), nil
}

// Query runs stmt and follows NextToken until the result set is complete.
func (r *TimestreamRepository) Query(ctx context.Context, stmt query.Statement) (*models.ResultSet, error) {
	queryString := stmt.Timestream()
	slog.Debug("Executing Timestream query", "query", queryString)

	paginator := timestreamquery.NewQueryPaginator(r.client, &timestreamquery.QueryInput{
		QueryString: aws.String(queryString),
	})

	rs := &models.ResultSet{Rows: []models.Row{}}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("timestream query: %w", err)
		}
		if rs.Columns == nil && len(page.ColumnInfo) > 0 {
			rs.Columns = columnNames(page.ColumnInfo)
		}
		for _, row := range page.Rows {
			rs.Rows = append(rs.Rows, convertRow(row))
		}
	}

	slog.Debug("Timestream query finished", "rows", len(rs.Rows))
	return rs, nil
}

// Close is a no-op; the SDK client has nothing to release.
func (r *TimestreamRepository) Close() {}

func columnNames(info []types.ColumnInfo) []string {
	names := make([]string, len(info))
	for i, c := range info {
		names[i] = aws.ToString(c.Name)
	}
	return names
}

func convertRow(row types.Row) models.Row {
	data := make([]models.Datum, len(row.Data))
	for i, d := range row.Data {
		data[i] = convertDatum(d)
	}
	return models.Row{Data: data}
}

func convertDatum(d types.Datum) models.Datum {
	out := models.Datum{
		ScalarValue: d.ScalarValue,
		NullValue:   d.NullValue,
	}
	if d.RowValue != nil {
		row := convertRow(*d.RowValue)
		out.RowValue = &row
	}
	if len(d.ArrayValue) > 0 {
		out.ArrayValue = make([]models.Datum, len(d.ArrayValue))
		for i, v := range d.ArrayValue {
			out.ArrayValue[i] = convertDatum(v)
		}
	}
	if len(d.TimeSeriesValue) > 0 {
		out.TimeSeriesValue = make([]models.TimeSeriesDataPoint, len(d.TimeSeriesValue))
		for i, p := range d.TimeSeriesValue {
			point := models.TimeSeriesDataPoint{Time: aws.ToString(p.Time)}
			if p.Value != nil {
				point.Value = convertDatum(*p.Value)
			}
			out.TimeSeriesValue[i] = point
		}
	}
	return out
}
