package verify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_UpToDate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello world\n"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("ello-hay orld-way\n"), 0o644))

	res, err := File(context.Background(), src, dst)
	require.NoError(t, err)
	assert.True(t, res.UpToDate)
	assert.Empty(t, res.Diff)
}

func TestFile_StaleDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello world\n"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("outdated content\n"), 0o644))

	res, err := File(context.Background(), src, dst)
	require.NoError(t, err)
	assert.False(t, res.UpToDate)
	assert.NotEmpty(t, res.Diff)
}

func TestFile_MissingDestinationIsStale(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello\n"), 0o644))

	res, err := File(context.Background(), src, filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.False(t, res.UpToDate)
}

func TestFile_MissingSource(t *testing.T) {
	dir := t.TempDir()

	_, err := File(context.Background(), filepath.Join(dir, "nope.txt"), filepath.Join(dir, "out.txt"))
	assert.Error(t, err)
}

func TestFile_DoesNotRewriteDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello\n"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("outdated content\n"), 0o644))

	_, err := File(context.Background(), src, dst)
	require.NoError(t, err)

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "outdated content\n", string(content))
}
