package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/texthog/igpay/internal/collector"
	"github.com/texthog/igpay/internal/piglatin"
	"github.com/texthog/igpay/internal/reader"
	"github.com/texthog/igpay/internal/storage"
)

// ConvertFile transforms every line of the file at src and writes the result
// to dst, truncating any existing content first. Source and destination are
// owned exclusively for the duration of the call and released on every exit
// path. On error the destination must be treated as unreliable.
func ConvertFile(ctx context.Context, src string, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer source.Close()

	sink, err := storage.NewFileSink(dst)
	if err != nil {
		return err
	}
	defer sink.Close()

	c := collector.NewLineCollector(
		reader.NewTextLineReader(source),
		piglatin.NewWordTransformer(),
	)

	return NewPipeline(c, sink, WithName("convert:"+filepath.Base(src))).Run(ctx)
}
