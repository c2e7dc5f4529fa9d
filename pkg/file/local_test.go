package file_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docsdk/pkg/file"
)

func TestNewLocalStorage(t *testing.T) {
	t.Parallel()

	_, err := file.NewLocalStorage("", "/files")
	assert.ErrorIs(t, err, file.ErrInvalidConfig)

	dir := filepath.Join(t.TempDir(), "nested", "tmp")
	storage, err := file.NewLocalStorage(dir, "/files")
	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, "/files/a/b.docx", storage.URL("a/b.docx"))
	assert.Equal(t, "/files/a/b.docx", storage.URL("/a/b.docx"))
}

func TestLocalStorage_PutOpenDelete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	storage, err := file.NewLocalStorage(dir, "https://host/files/")
	require.NoError(t, err)
	ctx := context.Background()

	obj, err := storage.Put(ctx, "probe/check.docx", strings.NewReader("hello"), "")
	require.NoError(t, err)
	assert.Equal(t, "probe/check.docx", obj.Path)
	assert.Equal(t, int64(5), obj.Size)
	assert.NotEmpty(t, obj.ContentType)

	info, err := os.Stat(filepath.Join(dir, "probe", "check.docx"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	rc, err := storage.Open(ctx, "probe/check.docx")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	assert.True(t, storage.Exists(ctx, "probe/check.docx"))
	require.NoError(t, storage.Delete(ctx, "probe/check.docx"))
	assert.False(t, storage.Exists(ctx, "probe/check.docx"))

	err = storage.Delete(ctx, "probe/check.docx")
	assert.ErrorIs(t, err, file.ErrFileNotFound)

	_, err = storage.Open(ctx, "probe/check.docx")
	assert.ErrorIs(t, err, file.ErrFileNotFound)

	err = storage.Delete(ctx, "probe")
	assert.ErrorIs(t, err, file.ErrIsDirectory)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	t.Parallel()

	storage, err := file.NewLocalStorage(t.TempDir(), "/files/")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = storage.Put(ctx, "../../etc/passwd", strings.NewReader("x"), "")
	assert.ErrorIs(t, err, file.ErrInvalidPath)

	_, err = storage.Open(ctx, "../secret")
	assert.ErrorIs(t, err, file.ErrInvalidPath)

	assert.False(t, storage.Exists(ctx, "../secret"))
}

func TestLocalStorage_PutErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	storage, err := file.NewLocalStorage(dir, "/files/")
	require.NoError(t, err)

	_, err = storage.Put(context.Background(), "a.docx", nil, "")
	assert.ErrorIs(t, err, file.ErrNilBody)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = storage.Put(ctx, "b.docx", strings.NewReader("x"), "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, "b.docx"))
}
