package controller

import (
	"log/slog"

	"CapIot.timestream/internal/models"
	"CapIot.timestream/internal/service"
	"CapIot.timestream/internal/utils"
	"github.com/aws/aws-lambda-go/events"
)

// TelemetryController holds the API Gateway proxy handlers.
type TelemetryController struct {
	service *service.TelemetryService
	logger  *slog.Logger
}

// NewTelemetryController creates a new TelemetryController.
func NewTelemetryController(service *service.TelemetryService, logger *slog.Logger) *TelemetryController {
	if logger == nil {
		logger = slog.Default()
	}
	return &TelemetryController{
		service: service,
		logger:  logger,
	}
}

// recoverPanic turns a panic in a handler into a 500 so nothing reaches the Lambda runtime.
// It must be deferred directly.
func (c *TelemetryController) recoverPanic(requestID string, resp *events.APIGatewayProxyResponse, headers map[string]string) {
	r := recover()
	if r == nil {
		return
	}
	c.logger.Error("Recovered handler panic", "panic", r, "request_id", requestID)

	var err error
	if e, ok := r.(error); ok {
		err = e
	}
	*resp = utils.RespondWithError(models.NewQueryError(err), headers)
}
