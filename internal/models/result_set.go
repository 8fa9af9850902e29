package models

// ResultSet is a backend-neutral query result: column names in select order
// plus rows in the store's native cell format.
type ResultSet struct {
	Columns []string
	Rows    []Row
}

// ColumnIndex returns the position of the named column or -1.
func (r *ResultSet) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Row mirrors a Timestream row. It is what the recent-window handler returns verbatim.
type Row struct {
	Data []Datum `json:"Data"`
}

// Datum is one typed cell. Exactly one field is set.
type Datum struct {
	ScalarValue     *string               `json:"ScalarValue,omitempty"`
	NullValue       *bool                 `json:"NullValue,omitempty"`
	ArrayValue      []Datum               `json:"ArrayValue,omitempty"`
	RowValue        *Row                  `json:"RowValue,omitempty"`
	TimeSeriesValue []TimeSeriesDataPoint `json:"TimeSeriesValue,omitempty"`
}

// TimeSeriesDataPoint is a single point of a timeseries cell.
type TimeSeriesDataPoint struct {
	Time  string `json:"Time"`
	Value Datum  `json:"Value"`
}

// Scalar returns the cell's scalar value and whether it had one.
func (d Datum) Scalar() (string, bool) {
	if d.ScalarValue == nil {
		return "", false
	}
	return *d.ScalarValue, true
}

// ScalarDatum wraps s as a scalar cell.
func ScalarDatum(s string) Datum {
	return Datum{ScalarValue: &s}
}

// NullDatum is a SQL NULL cell.
func NullDatum() Datum {
	null := true
	return Datum{NullValue: &null}
}
