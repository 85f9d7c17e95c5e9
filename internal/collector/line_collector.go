package collector

import (
	"context"
	"log/slog"

	"github.com/texthog/igpay/internal/piglatin"
	"github.com/texthog/igpay/internal/reader"
)

// LineCollector pairs a line source with a token transformer and emits
// transformed lines in input order.
type LineCollector struct {
	Reader      reader.LineReader
	Transformer piglatin.Transformer
}

func NewLineCollector(r reader.LineReader, t piglatin.Transformer) *LineCollector {
	return &LineCollector{
		Reader:      r,
		Transformer: t,
	}
}

// Collect streams transformed lines. A read failure is forwarded once and
// ends the stream; the conversion has no partial-success mode.
func (lc *LineCollector) Collect(ctx context.Context) (<-chan Result[string], error) {
	lines, err := lc.Reader.ReadLines(ctx)
	if err != nil {
		return nil, err
	}

	results := make(chan Result[string])
	go func() {
		defer close(results)

		for {
			select {
			case <-ctx.Done():
				return
			case res, ok := <-lines:
				if !ok {
					return
				}
				if res.Err != nil {
					slog.Error("failed to read line from source", "error", res.Err)
					results <- Result[string]{Err: res.Err}
					return
				}

				results <- Result[string]{Result: piglatin.TransformLine(lc.Transformer, res.Line)}
			}
		}
	}()

	return results, nil
}
