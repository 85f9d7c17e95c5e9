package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/texthog/igpay/internal/processor"
)

func main() {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := processor.ConvertFile(ctx, cfg.SourcePath, cfg.OutputPath); err != nil {
		slog.Error("failed to run pipeline", "error", err)
		os.Exit(1)
	}
}
