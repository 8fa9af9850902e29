package controller

import (
	"context"
	"net/http"

	"CapIot.timestream/internal/models"
	"CapIot.timestream/internal/utils"
	"github.com/aws/aws-lambda-go/events"
)

// HandleRecent returns the last hour of the telemetry table as raw rows.
// The request itself is never inspected.
func (c *TelemetryController) HandleRecent(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	requestID := req.RequestContext.RequestID
	defer c.recoverPanic(requestID, &resp, nil)

	rows, qerr := c.service.RecentRows(ctx)
	if qerr != nil {
		c.logger.Error("Error querying recent telemetry", "error", qerr, "request_id", requestID)
		return utils.RespondWithError(models.NewQueryError(qerr), nil), nil
	}

	c.logger.Info("Recent telemetry query executed", "rows", len(rows), "request_id", requestID)
	return utils.RespondWithJSON(http.StatusOK, models.RecentResponse{
		Message: models.MessageQueryExecuted,
		Data:    rows,
	}, nil), nil
}
