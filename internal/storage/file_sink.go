package storage

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// FileSink writes lines to a destination file. An existing file is truncated
// before the first write, never appended to.
type FileSink struct {
	file   *os.File
	writer *bufio.Writer
}

func NewFileSink(path string) (*FileSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}

	return &FileSink{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

// WriteLine appends one terminated line to the destination.
func (s *FileSink) WriteLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.writer.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}

func (s *FileSink) Flush() error {
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush destination file: %w", err)
	}
	return nil
}

// Close flushes any buffered output and releases the file handle. The file
// is closed even when the final flush fails.
func (s *FileSink) Close() error {
	flushErr := s.writer.Flush()
	if err := s.file.Close(); err != nil {
		return err
	}
	return flushErr
}
