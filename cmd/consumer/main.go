package main

import (
	"context"
	"fmt"
	"os"

	"tracking-pixel/internal/app"
	"tracking-pixel/internal/shared/configs"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	// Functions are configured through PIXEL_* environment variables only
	cfg, err := configs.LoadConfig(os.Getenv("PIXEL_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	handler, err := app.NewStreamHandler(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize stream handler: %v\n", err)
		os.Exit(1)
	}

	lambda.Start(handler.Handle)
}
