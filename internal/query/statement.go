// Package query describes telemetry queries as data and renders them for a backend.
//
// A Statement is only assembled from values that already passed validation,
// and every value is written into the query text through a quoting function.
package query

import (
	"CapIot.timestream/internal/validation"
)

// RecentWindow is the fixed look-back of the recent-window query.
var RecentWindow = validation.MustTimeWindow("1h")

// Source names the telemetry table. For InfluxDB, Database is the bucket
// and Table the measurement.
type Source struct {
	Database string
	Table    string
}

// Column is one entry of the select list.
type Column struct {
	// Name is the column name in the result set.
	Name string
	// Expr is the select expression; empty means Name itself.
	Expr string
}

// Result column names shared by the renderers and the row decoder.
const (
	ColumnTime         = "time"
	ColumnID           = "id"
	ColumnValue        = "value"
	ColumnMeasureName  = "measure_name"
	ColumnMeasureValue = "measure_value::bigint"
)

var (
	colTime        = Column{Name: ColumnTime}
	colID          = Column{Name: ColumnID}
	colValue       = Column{Name: ColumnValue, Expr: ColumnMeasureValue}
	colMeasureName = Column{Name: ColumnMeasureName}
)

// Match says how Statement.Devices filters rows.
type Match int

const (
	// MatchAll applies no device filter.
	MatchAll Match = iota
	// MatchOne filters on a single device with equality.
	MatchOne
	// MatchAny filters on a device list with IN.
	MatchAny
)

// Statement is a time bounded select over the telemetry table.
type Statement struct {
	Source Source
	// Columns is the select list; nil selects every column.
	Columns     []Column
	Match       Match
	Devices     []validation.DeviceID
	Window      validation.TimeWindow
	NewestFirst bool
}

// Recent selects every column of the last hour.
func Recent(src Source) Statement {
	return Statement{
		Source: src,
		Window: RecentWindow,
	}
}

// DeviceReadings selects one device's readings, newest first. The id column
// is left out because the filter already pins it.
func DeviceReadings(src Source, window validation.TimeWindow, id validation.DeviceID) Statement {
	return Statement{
		Source:      src,
		Columns:     []Column{colTime, colValue, colMeasureName},
		Match:       MatchOne,
		Devices:     []validation.DeviceID{id},
		Window:      window,
		NewestFirst: true,
	}
}

// DevicesReadings selects the readings of several devices, newest first.
func DevicesReadings(src Source, window validation.TimeWindow, ids []validation.DeviceID) Statement {
	return Statement{
		Source:      src,
		Columns:     []Column{colTime, colID, colValue, colMeasureName},
		Match:       MatchAny,
		Devices:     ids,
		Window:      window,
		NewestFirst: true,
	}
}

// ColumnNames returns the result column names, or nil for select-all.
func (s Statement) ColumnNames() []string {
	if s.Columns == nil {
		return nil
	}
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}
