package service

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"CapIot.timestream/internal/models"
	"CapIot.timestream/internal/query"
)

var ErrMissingColumn = errors.New("result set is missing a column")

var leadingInteger = regexp.MustCompile(`^\s*[+-]?\d+`)

// readingSchema locates the reading columns by name.
type readingSchema struct {
	time, id, value, measureName int
}

func newReadingSchema(rs *models.ResultSet, withID bool) (readingSchema, error) {
	schema := readingSchema{
		time:        rs.ColumnIndex(query.ColumnTime),
		id:          -1,
		value:       rs.ColumnIndex(query.ColumnValue),
		measureName: rs.ColumnIndex(query.ColumnMeasureName),
	}
	required := map[string]int{
		query.ColumnTime:        schema.time,
		query.ColumnValue:       schema.value,
		query.ColumnMeasureName: schema.measureName,
	}
	if withID {
		schema.id = rs.ColumnIndex(query.ColumnID)
		required[query.ColumnID] = schema.id
	}
	for name, idx := range required {
		if idx < 0 {
			return readingSchema{}, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return schema, nil
}

// decodeReadings maps rows onto Reading by column name. A result with no
// rows decodes to an empty slice even when the store sent no column metadata.
func decodeReadings(rs *models.ResultSet, withID bool) ([]models.Reading, error) {
	readings := make([]models.Reading, 0, len(rs.Rows))
	if len(rs.Rows) == 0 {
		return readings, nil
	}

	schema, err := newReadingSchema(rs, withID)
	if err != nil {
		return nil, err
	}

	for _, row := range rs.Rows {
		r := models.Reading{
			Time:        cell(row, schema.time),
			MeasureName: cell(row, schema.measureName),
		}
		if withID {
			r.ID = cell(row, schema.id)
		}
		raw := cell(row, schema.value)
		r.Value = parseInteger(raw)
		if r.Value == nil {
			slog.Warn("Non-numeric measure value", "value", raw, "time", r.Time, "measure_name", r.MeasureName)
		}
		readings = append(readings, r)
	}
	return readings, nil
}

func cell(row models.Row, idx int) string {
	if idx < 0 || idx >= len(row.Data) {
		return ""
	}
	v, _ := row.Data[idx].Scalar()
	return v
}

// parseInteger reads the leading base-10 integer of s, ignoring anything after
// it ("12.7" -> 12). It returns nil when s does not start with one.
func parseInteger(s string) *int64 {
	m := leadingInteger.FindString(s)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(m), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
