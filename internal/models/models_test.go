package models

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorBody(t *testing.T) {
	body, err := json.Marshal(NewBadRequest(ErrorCodeInvalidFormat, MessageInvalidDeviceID))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Invalid device ID format. Must be a valid UUID."}`, string(body))

	body, err = json.Marshal(NewQueryError(errors.New("ThrottlingException: rate exceeded")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Error querying Timestream","error":"ThrottlingException: rate exceeded"}`, string(body))
}

func TestNewQueryErrorUnknown(t *testing.T) {
	for _, err := range []error{nil, errors.New("")} {
		apiErr := NewQueryError(err)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, UnknownError, apiErr.Detail)
	}
}

func TestAPIErrorError(t *testing.T) {
	assert.Equal(t, "[missing_parameter] "+MessageMissingDevice, NewBadRequest(ErrorCodeMissingParameter, MessageMissingDevice).Error())
	assert.Equal(t, "[upstream_query_failed] Error querying Timestream: boom", NewQueryError(errors.New("boom")).Error())
}

func TestRowJSON(t *testing.T) {
	rows := []Row{{Data: []Datum{
		ScalarDatum("2024-05-01 10:00:00.000000000"),
		NullDatum(),
		{ArrayValue: []Datum{ScalarDatum("1"), ScalarDatum("2")}},
		{TimeSeriesValue: []TimeSeriesDataPoint{{Time: "t1", Value: ScalarDatum("7")}}},
	}}}

	body, err := json.Marshal(rows)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"Data":[
		{"ScalarValue":"2024-05-01 10:00:00.000000000"},
		{"NullValue":true},
		{"ArrayValue":[{"ScalarValue":"1"},{"ScalarValue":"2"}]},
		{"TimeSeriesValue":[{"Time":"t1","Value":{"ScalarValue":"7"}}]}
	]}]`, string(body))
}

func TestResultSetColumnIndex(t *testing.T) {
	rs := &ResultSet{Columns: []string{"time", "value", "measure_name"}}
	assert.Equal(t, 0, rs.ColumnIndex("time"))
	assert.Equal(t, 2, rs.ColumnIndex("measure_name"))
	assert.Equal(t, -1, rs.ColumnIndex("id"))
}

func TestReadingJSON(t *testing.T) {
	v := int64(42)
	body, err := json.Marshal([]Reading{
		{Time: "t1", Value: &v, MeasureName: "temperature"},
		{Time: "t2", ID: "abc", MeasureName: "humidity"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"time":"t1","value":42,"measureName":"temperature"},
		{"time":"t2","id":"abc","value":null,"measureName":"humidity"}
	]`, string(body))
}
