package verify

import (
	"context"
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/texthog/igpay/internal/collector"
	"github.com/texthog/igpay/internal/piglatin"
	"github.com/texthog/igpay/internal/processor"
	"github.com/texthog/igpay/internal/reader"
	"github.com/texthog/igpay/internal/storage"
)

// Result describes how a destination file compares against a fresh transform
// of its source.
type Result struct {
	UpToDate bool
	Diff     string
}

// File recomputes the transform of src in memory and compares it against the
// current contents of dst without rewriting anything. A missing destination
// counts as stale.
func File(ctx context.Context, src string, dst string) (*Result, error) {
	source, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer source.Close()

	sink := storage.NewMemorySink()
	c := collector.NewLineCollector(
		reader.NewTextLineReader(source),
		piglatin.NewWordTransformer(),
	)
	if err := processor.NewPipeline(c, sink, processor.WithName("verify")).Run(ctx); err != nil {
		return nil, err
	}

	current, err := os.ReadFile(dst)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read destination file: %w", err)
	}

	want := sink.String()
	if string(current) == want {
		return &Result{UpToDate: true}, nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(current), want, false)
	return &Result{Diff: dmp.DiffPrettyText(diffs)}, nil
}
