package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/texthog/igpay/pkg/config/env"
	"github.com/texthog/igpay/pkg/stringsutil"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type BatchConfig struct {
	ManifestPaths []string
	CheckMode     bool
}

func (as *AppConfig) Load() (*BatchConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/batch_convert/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	// MANIFEST_PATH takes a comma-separated list
	paths := stringsutil.SplitList(os.Getenv("MANIFEST_PATH"))
	if len(paths) == 0 {
		slog.Error("MANIFEST_PATH environment variable is not set")
		return nil, fmt.Errorf("MANIFEST_PATH environment variable is not set")
	}

	return &BatchConfig{
		ManifestPaths: paths,
		CheckMode:     os.Getenv("CHECK_MODE") == "true",
	}, nil
}
