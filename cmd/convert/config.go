package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/texthog/igpay/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type ConvertConfig struct {
	SourcePath string
	OutputPath string
}

func (as *AppConfig) Load() (*ConvertConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/convert/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	srcPath := os.Getenv("SOURCE_PATH")
	if srcPath == "" {
		slog.Error("SOURCE_PATH environment variable is not set")
		return nil, fmt.Errorf("SOURCE_PATH environment variable is not set")
	}

	outPath := os.Getenv("OUTPUT_PATH")
	if outPath == "" {
		slog.Error("OUTPUT_PATH environment variable is not set")
		return nil, fmt.Errorf("OUTPUT_PATH environment variable is not set")
	}

	return &ConvertConfig{
		SourcePath: srcPath,
		OutputPath: outPath,
	}, nil
}
