package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"CapIot.timestream/internal/models"
	"CapIot.timestream/internal/query"
	"CapIot.timestream/internal/validation"
	fluxquery "github.com/influxdata/influxdb-client-go/v2/api/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fluxCSV = `#datatype,string,long,dateTime:RFC3339,dateTime:RFC3339,dateTime:RFC3339,long,string,string,string
#group,false,false,true,true,false,false,true,true,true
#default,_result,,,,,,,,
,result,table,_start,_stop,_time,_value,_field,_measurement,id
,,0,2024-05-01T08:00:00Z,2024-05-01T10:00:00Z,2024-05-01T10:00:02Z,21,temperature,uplinkDB,3f2504e0-4f89-41d3-9a0c-0305e82c3301
,,0,2024-05-01T08:00:00Z,2024-05-01T10:00:00Z,2024-05-01T10:00:01Z,55,humidity,uplinkDB,6ba7b810-9dad-41d1-80b4-00c04fd430c8

`

func newInfluxServer(t *testing.T, healthStatus string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"name":"influxdb","message":"ready for queries and writes","status":%q,"checks":[],"version":"v2.7.1","commit":"407fa622e9"}`, healthStatus)
		case "/api/v2/query":
			assert.Equal(t, "capiot", r.URL.Query().Get("org"))
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			fmt.Fprint(w, fluxCSV)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestInfluxDBPing(t *testing.T) {
	repo := NewInfluxDBRepository(newInfluxServer(t, "pass").URL, "token", "capiot")
	defer repo.Close()
	assert.NoError(t, repo.Ping(context.Background()))

	failing := NewInfluxDBRepository(newInfluxServer(t, "fail").URL, "token", "capiot")
	defer failing.Close()
	assert.ErrorContains(t, failing.Ping(context.Background()), "InfluxDB health check failed")
}

func TestInfluxDBQuery(t *testing.T) {
	repo := NewInfluxDBRepository(newInfluxServer(t, "pass").URL, "token", "capiot")
	defer repo.Close()

	stmt := query.DevicesReadings(query.Source{Database: "sampleDB", Table: "uplinkDB"},
		validation.MustTimeWindow("2h"),
		[]validation.DeviceID{"3f2504e0-4f89-41d3-9a0c-0305e82c3301", "6ba7b810-9dad-41d1-80b4-00c04fd430c8"})

	rs, err := repo.Query(context.Background(), stmt)
	require.NoError(t, err)

	assert.Equal(t, []string{"time", "id", "value", "measure_name"}, rs.Columns)
	require.Len(t, rs.Rows, 2)
	assert.Equal(t, []models.Datum{
		models.ScalarDatum("2024-05-01 10:00:02.000000000"),
		models.ScalarDatum("3f2504e0-4f89-41d3-9a0c-0305e82c3301"),
		models.ScalarDatum("21"),
		models.ScalarDatum("temperature"),
	}, rs.Rows[0].Data)
}

func TestInfluxDBQueryUnreachable(t *testing.T) {
	srv := newInfluxServer(t, "pass")
	url := srv.URL
	srv.Close()

	repo := NewInfluxDBRepository(url, "token", "capiot")
	defer repo.Close()

	_, err := repo.Query(context.Background(), query.Recent(query.Source{Database: "sampleDB", Table: "uplinkDB"}))
	assert.ErrorContains(t, err, "error querying InfluxDB")
}

func TestRecordRowSelectAll(t *testing.T) {
	rec := fluxquery.NewFluxRecord(0, map[string]interface{}{
		"_time":  time.Date(2024, 5, 1, 12, 0, 0, 5, time.FixedZone("CEST", 2*60*60)),
		"_value": 21.5,
		"_field": "temperature",
		"id":     "3f2504e0-4f89-41d3-9a0c-0305e82c3301",
	})

	row := recordRow(allColumns, rec)

	assert.Equal(t, []models.Datum{
		models.ScalarDatum("3f2504e0-4f89-41d3-9a0c-0305e82c3301"),
		models.ScalarDatum("temperature"),
		models.ScalarDatum("2024-05-01 10:00:00.000000005"),
		models.ScalarDatum("21.5"),
	}, row.Data)
}

func TestToDatum(t *testing.T) {
	assert.Equal(t, models.NullDatum(), toDatum(nil))
	assert.Equal(t, models.ScalarDatum("-3"), toDatum(int64(-3)))
	assert.Equal(t, models.ScalarDatum("7"), toDatum(uint64(7)))
	assert.Equal(t, models.ScalarDatum("true"), toDatum(true))
	assert.Equal(t, models.ScalarDatum("x"), toDatum("x"))
}
