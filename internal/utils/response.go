package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"CapIot.timestream/internal/models"
	"github.com/aws/aws-lambda-go/events"
)

// CORSHeaders are attached to every device query response.
func CORSHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// RespondWithJSON builds a proxy response with payload as the JSON body.
// headers may be nil.
func RespondWithJSON(statusCode int, payload interface{}, headers map[string]string) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		statusCode = http.StatusInternalServerError
		body, _ = json.Marshal(models.NewQueryError(err))
	}
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(body),
	}
}

// RespondWithError builds a proxy response from an APIError, using its status code.
func RespondWithError(apiErr models.APIError, headers map[string]string) events.APIGatewayProxyResponse {
	return RespondWithJSON(apiErr.StatusCode, apiErr, headers)
}
