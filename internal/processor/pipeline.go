package processor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/texthog/igpay/internal/collector"
	"github.com/texthog/igpay/internal/storage"
)

// Pipeline defines the interface for line processing pipelines
type Pipeline interface {
	// Run executes the pipeline with the given context
	Run(ctx context.Context) error
}

// PipelineConfig defines configuration for pipelines
type PipelineConfig struct {
	Name string
}

// LinePipeline moves lines from collection to storage in one forward pass,
// preserving input order. It fails fast: the first read or write error ends
// the run and the destination must be treated as incomplete.
type LinePipeline struct {
	collector collector.Collector[string]
	sink      storage.Sink
	config    *PipelineConfig
}

type PipelineOption func(pipeline *LinePipeline)

// WithName sets the pipeline name used in log fields.
func WithName(name string) PipelineOption {
	return func(pipeline *LinePipeline) {
		pipeline.config.Name = name
	}
}

// NewPipeline creates a new line conversion pipeline.
func NewPipeline(c collector.Collector[string], sink storage.Sink, opts ...PipelineOption) *LinePipeline {
	p := &LinePipeline{
		collector: c,
		sink:      sink,
		config: &PipelineConfig{
			Name: "line-pipeline",
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run executes the pipeline and flushes the sink before reporting success.
func (p *LinePipeline) Run(ctx context.Context) error {
	start := time.Now()
	runID := uuid.New()
	slog.Info("🛫 Starting pipeline run",
		"pipeline", p.config.Name,
		"run_id", runID,
		"time", start,
	)

	results, err := p.collector.Collect(ctx)
	if err != nil {
		slog.Error("Error collecting lines", "error", err, "pipeline", p.config.Name)
		return err
	}

	runErr := p.process(ctx, results)
	if runErr == nil {
		runErr = p.sink.Flush()
	}

	slog.Info("Pipeline run completed",
		"pipeline", p.config.Name,
		"run_id", runID,
		"duration", time.Since(start),
		"error", runErr,
	)

	return runErr
}

func (p *LinePipeline) process(ctx context.Context, results <-chan collector.Result[string]) error {
	written := 0

	for {
		select {
		case <-ctx.Done():
			slog.Info("Pipeline context cancelled, stopping",
				"pipeline", p.config.Name,
				"written", written,
			)
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				slog.Info("Collection channel closed, stopping",
					"pipeline", p.config.Name,
					"written", written,
				)
				return nil
			}

			if res.Err != nil {
				return fmt.Errorf("failed to collect line: %w", res.Err)
			}

			if err := p.sink.WriteLine(ctx, res.Result); err != nil {
				return fmt.Errorf("failed to write line: %w", err)
			}
			written++
		}
	}
}
