package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/texthog/igpay/internal/apperr"
	"github.com/texthog/igpay/internal/manifest"
	"github.com/texthog/igpay/internal/processor"
	"github.com/texthog/igpay/internal/verify"
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

	failed := 0
	for _, path := range cfg.ManifestPaths {
		m, err := loadManifest(path)
		if err != nil {
			var ve *apperr.ValidationError
			if errors.As(err, &ve) {
				slog.Error("invalid manifest", "path", path, "error", ve.Message)
			} else {
				slog.Error("failed to load manifest", "path", path, "error", err)
			}
			os.Exit(1)
		}

		slog.Info("Running manifest", "path", path, "name", m.Metadata.Name, "jobs", len(m.Jobs))
		failed += runJobs(ctx, cfg, m)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func loadManifest(path string) (*manifest.Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return manifest.NewLoader(file).Load(true)
}

func runJobs(ctx context.Context, cfg *BatchConfig, m *manifest.Manifest) int {
	passed := color.New(color.FgGreen)
	broken := color.New(color.FgRed)

	failed := 0
	for _, job := range m.Jobs {
		jobID := uuid.New()
		slog.Info("Starting conversion job",
			"job", job.Name,
			"job_id", jobID,
			"source", job.Source,
			"output", job.Output,
			"check_mode", cfg.CheckMode,
		)

		if cfg.CheckMode {
			res, err := verify.File(ctx, job.Source, job.Output)
			switch {
			case err != nil:
				slog.Error("failed to verify job", "job", job.Name, "job_id", jobID, "error", err)
				broken.Printf("✗ %s: %v\n", job.Name, err)
				failed++
			case !res.UpToDate:
				broken.Printf("✗ %s: output is stale\n", job.Name)
				failed++
			default:
				passed.Printf("✓ %s\n", job.Name)
			}
			continue
		}

		if err := processor.ConvertFile(ctx, job.Source, job.Output); err != nil {
			slog.Error("failed to run job", "job", job.Name, "job_id", jobID, "error", err)
			broken.Printf("✗ %s: %v\n", job.Name, err)
			failed++
			continue
		}
		passed.Printf("✓ %s\n", job.Name)
	}

	return failed
}
