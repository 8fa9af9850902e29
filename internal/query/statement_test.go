package query

import (
	"testing"

	"CapIot.timestream/internal/validation"
	"github.com/stretchr/testify/assert"
)

var (
	src  = Source{Database: "sampleDB", Table: "uplinkDB"}
	dev1 = validation.DeviceID("3f2504e0-4f89-41d3-9a0c-0305e82c3301")
	dev2 = validation.DeviceID("6ba7b810-9dad-41d1-80b4-00c04fd430c8")
)

func TestRecentTimestream(t *testing.T) {
	stmt := Recent(src)

	assert.Nil(t, stmt.ColumnNames())
	assert.Equal(t, `SELECT *
FROM "sampleDB"."uplinkDB"
WHERE time >= ago(1h)`, stmt.Timestream())
}

func TestDeviceReadingsTimestream(t *testing.T) {
	stmt := DeviceReadings(src, validation.MustTimeWindow("2h"), dev1)

	assert.Equal(t, []string{"time", "value", "measure_name"}, stmt.ColumnNames())
	assert.Equal(t, `SELECT time, measure_value::bigint AS value, measure_name
FROM "sampleDB"."uplinkDB"
WHERE id = '3f2504e0-4f89-41d3-9a0c-0305e82c3301'
AND time >= ago(2h)
ORDER BY time DESC`, stmt.Timestream())
}

func TestDevicesReadingsTimestream(t *testing.T) {
	stmt := DevicesReadings(src, validation.MustTimeWindow("15m"), []validation.DeviceID{dev1, dev2})

	assert.Equal(t, []string{"time", "id", "value", "measure_name"}, stmt.ColumnNames())
	assert.Equal(t, `SELECT time, id, measure_value::bigint AS value, measure_name
FROM "sampleDB"."uplinkDB"
WHERE id IN ('3f2504e0-4f89-41d3-9a0c-0305e82c3301','6ba7b810-9dad-41d1-80b4-00c04fd430c8')
AND time >= ago(15m)
ORDER BY time DESC`, stmt.Timestream())
}

func TestTimestreamQuoting(t *testing.T) {
	stmt := Statement{
		Source:  Source{Database: `odd"db`, Table: "tbl"},
		Columns: []Column{colTime},
		Match:   MatchOne,
		Devices: []validation.DeviceID{"it's"},
		Window:  validation.MustTimeWindow("1d"),
	}

	assert.Equal(t, `SELECT time
FROM "odd""db"."tbl"
WHERE id = 'it''s'
AND time >= ago(1d)`, stmt.Timestream())
}

func TestRecentFlux(t *testing.T) {
	assert.Equal(t, `from(bucket: "sampleDB")
  |> range(start: -1h)
  |> filter(fn: (r) => r._measurement == "uplinkDB")
  |> group()
  |> sort(columns: ["_time"], desc: false)`, Recent(src).Flux())
}

func TestDevicesReadingsFlux(t *testing.T) {
	stmt := DevicesReadings(src, validation.MustTimeWindow("3d"), []validation.DeviceID{dev1, dev2})

	assert.Equal(t, `from(bucket: "sampleDB")
  |> range(start: -3d)
  |> filter(fn: (r) => r._measurement == "uplinkDB")
  |> filter(fn: (r) => r.id == "3f2504e0-4f89-41d3-9a0c-0305e82c3301" or r.id == "6ba7b810-9dad-41d1-80b4-00c04fd430c8")
  |> group()
  |> sort(columns: ["_time"], desc: true)`, stmt.Flux())
}

func TestDeviceReadingsFlux(t *testing.T) {
	stmt := DeviceReadings(src, validation.MustTimeWindow("1m"), dev1)

	assert.Contains(t, stmt.Flux(), `|> filter(fn: (r) => r.id == "3f2504e0-4f89-41d3-9a0c-0305e82c3301")`)
	assert.Contains(t, stmt.Flux(), `|> range(start: -1m)`)
}
