// Package apiclient talks to the telemetry HTTP API served by cmd/server or API Gateway.
package apiclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"CapIot.timestream/internal/models"
	"github.com/go-resty/resty/v2"
)

// Client is a thin resty wrapper around the telemetry routes.
type Client struct {
	http *resty.Client
}

// New returns a client rooted at baseURL.
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)
	return &Client{http: c}
}

// Recent fetches the raw rows of the trailing hour.
func (c *Client) Recent(ctx context.Context) (*models.RecentResponse, error) {
	var out models.RecentResponse
	if err := c.get(ctx, "/telemetry/recent", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Device fetches one device's readings. An empty window leaves the server default.
func (c *Client) Device(ctx context.Context, deviceID, window string) (*models.DeviceReadingsResponse, error) {
	var out models.DeviceReadingsResponse
	path := fmt.Sprintf("/devices/%s/telemetry", url.PathEscape(deviceID))
	if err := c.get(ctx, path, windowParams(window), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Devices fetches the readings of several devices in one query.
func (c *Client) Devices(ctx context.Context, ids []string, window string) (*models.DevicesReadingsResponse, error) {
	var out models.DevicesReadingsResponse
	params := windowParams(window)
	params["ids"] = strings.Join(ids, ",")
	if err := c.get(ctx, "/devices/telemetry", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func windowParams(window string) map[string]string {
	params := map[string]string{}
	if window != "" {
		params["timeWindow"] = window
	}
	return params
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	var apiErr models.APIError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(out).
		SetError(&apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	slog.Debug("API response", "path", path, "status", resp.StatusCode())

	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(resp.Body()))
		}
		return &StatusError{APIError: apiErr}
	}
	return nil
}

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	models.APIError
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d: %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
