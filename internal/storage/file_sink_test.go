package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_WritesTerminatedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	sink, err := NewFileSink(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, sink.WriteLine(ctx, "ello-hay orld-way"))
	require.NoError(t, sink.WriteLine(ctx, "oodbye-gay"))
	require.NoError(t, sink.Flush())
	require.NoError(t, sink.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ello-hay orld-way\noodbye-gay\n", string(content))
}

func TestFileSink_TruncatesExistingDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content from a previous run\n"), 0o644))

	sink, err := NewFileSink(path)
	require.NoError(t, err)

	require.NoError(t, sink.WriteLine(context.Background(), "resh-fay"))
	require.NoError(t, sink.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "resh-fay\n", string(content))
}

func TestFileSink_UncreatableDestination(t *testing.T) {
	_, err := NewFileSink(filepath.Join(t.TempDir(), "missing", "out.txt"))
	assert.Error(t, err)
}

func TestFileSink_CloseFlushesBufferedOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	sink, err := NewFileSink(path)
	require.NoError(t, err)

	require.NoError(t, sink.WriteLine(context.Background(), "uffered-bay"))
	// no explicit Flush
	require.NoError(t, sink.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "uffered-bay\n", string(content))
}

func TestNewSink(t *testing.T) {
	sink, err := NewSink(InMem, "")
	require.NoError(t, err)
	assert.IsType(t, &MemorySink{}, sink)

	sink, err = NewSink(File, filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	assert.IsType(t, &FileSink{}, sink)
	require.NoError(t, sink.Close())

	_, err = NewSink(Type("solr"), "")
	assert.Error(t, err)
}
