package main

import (
	"context"
	"log/slog"
	"os"

	"CapIot.timestream/internal/bootstrap"
	"github.com/aws/aws-lambda-go/lambda"
)

var app *bootstrap.App

func init() {
	var err error
	app, err = bootstrap.Load(context.Background())
	if err != nil {
		slog.Error("Failed to initialize recent-window function", "error", err)
		os.Exit(1)
	}
	app.Logger.Info("Recent-window function: cold start", "backend", app.Config.Backend)
}

func main() {
	lambda.Start(app.Controller.HandleRecent)
}
