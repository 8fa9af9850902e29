package controller

import (
	"context"
	"net/http"

	"CapIot.timestream/internal/models"
	"CapIot.timestream/internal/utils"
	"CapIot.timestream/internal/validation"
	"github.com/aws/aws-lambda-go/events"
)

// parseQueryRequest reads the device query inputs: timeWindow and ids from the
// query string, deviceId from the path.
func parseQueryRequest(req events.APIGatewayProxyRequest) models.QueryRequest {
	ids, hasIDs := req.QueryStringParameters["ids"]
	return models.QueryRequest{
		TimeWindow: req.QueryStringParameters["timeWindow"],
		IDs:        ids,
		HasIDs:     hasIDs,
		DeviceID:   req.PathParameters["deviceId"],
	}
}

// HandleDeviceQuery returns the readings of one device (deviceId path parameter)
// or several devices (ids query parameter) inside timeWindow. When both are
// given, ids wins.
func (c *TelemetryController) HandleDeviceQuery(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	requestID := req.RequestContext.RequestID
	headers := utils.CORSHeaders()
	defer c.recoverPanic(requestID, &resp, headers)

	q := parseQueryRequest(req)

	rawWindow := q.TimeWindow
	if rawWindow == "" {
		rawWindow = validation.DefaultTimeWindow
	}
	window, werr := validation.ParseTimeWindow(rawWindow)
	if werr != nil {
		c.logger.Warn("Invalid time window", "time_window", rawWindow, "request_id", requestID)
		return utils.RespondWithError(models.NewBadRequest(models.ErrorCodeInvalidFormat, models.MessageInvalidTimeWindow), headers), nil
	}

	switch {
	case q.HasIDs:
		return c.devicesReadings(ctx, requestID, window, q.IDs, headers), nil
	case q.DeviceID != "":
		return c.deviceReadings(ctx, requestID, window, q.DeviceID, headers), nil
	default:
		c.logger.Warn("No device selected", "request_id", requestID)
		return utils.RespondWithError(models.NewBadRequest(models.ErrorCodeMissingParameter, models.MessageMissingDevice), headers), nil
	}
}

func (c *TelemetryController) devicesReadings(ctx context.Context, requestID string, window validation.TimeWindow, rawIDs string, headers map[string]string) events.APIGatewayProxyResponse {
	ids, err := validation.ParseDeviceIDs(rawIDs)
	if err != nil {
		c.logger.Warn("Invalid device id list", "ids", rawIDs, "request_id", requestID)
		return utils.RespondWithError(models.NewBadRequest(models.ErrorCodeInvalidFormat, models.MessageInvalidDeviceIDs), headers)
	}

	readings, err := c.service.DevicesReadings(ctx, window, ids)
	if err != nil {
		c.logger.Error("Error querying device telemetry", "error", err, "device_ids", ids, "request_id", requestID)
		return utils.RespondWithError(models.NewQueryError(err), headers)
	}

	deviceIDs := make([]string, len(ids))
	for i, id := range ids {
		deviceIDs[i] = string(id)
	}

	c.logger.Info("Device telemetry query executed", "devices", len(ids), "rows", len(readings), "time_window", window.String(), "request_id", requestID)
	return utils.RespondWithJSON(http.StatusOK, models.DevicesReadingsResponse{
		Message:    models.MessageQueryExecuted,
		DeviceIDs:  deviceIDs,
		TimeWindow: window.String(),
		Data:       readings,
	}, headers)
}

func (c *TelemetryController) deviceReadings(ctx context.Context, requestID string, window validation.TimeWindow, rawID string, headers map[string]string) events.APIGatewayProxyResponse {
	id, err := validation.ParseDeviceID(rawID)
	if err != nil {
		c.logger.Warn("Invalid device id", "device_id", rawID, "request_id", requestID)
		return utils.RespondWithError(models.NewBadRequest(models.ErrorCodeInvalidFormat, models.MessageInvalidDeviceID), headers)
	}

	readings, err := c.service.DeviceReadings(ctx, window, id)
	if err != nil {
		c.logger.Error("Error querying device telemetry", "error", err, "device_id", id, "request_id", requestID)
		return utils.RespondWithError(models.NewQueryError(err), headers)
	}

	c.logger.Info("Device telemetry query executed", "device_id", id, "rows", len(readings), "time_window", window.String(), "request_id", requestID)
	return utils.RespondWithJSON(http.StatusOK, models.DeviceReadingsResponse{
		Message:    models.MessageQueryExecuted,
		DeviceID:   string(id),
		TimeWindow: window.String(),
		Data:       readings,
	}, headers)
}
