package file_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docsdk/pkg/file"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"../../../etc/passwd":   "passwd",
		"C:\\Windows\\file.txt": "file.txt",
		"":                      "unnamed",
		"..":                    "unnamed",
		"normal.docx":           "normal.docx",
		"with\x00null.docx":     "withnull.docx",
	}
	for in, want := range tests {
		assert.Equal(t, want, file.SanitizeFilename(in), "input %q", in)
	}
}

func TestContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, file.DefaultContentType, file.ContentType("blob"))
	assert.Contains(t, file.ContentType("page.html"), "text/html")
}

func TestWithTemp(t *testing.T) {
	t.Parallel()

	storage, err := file.NewLocalStorage(t.TempDir(), "http://host/tmp/")
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("removes file after success", func(t *testing.T) {
		t.Parallel()
		var seen string
		err := file.WithTemp(ctx, storage, "ok.docx", strings.NewReader("x"), func(url string) error {
			seen = url
			assert.True(t, storage.Exists(ctx, "ok.docx"))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "http://host/tmp/ok.docx", seen)
		assert.False(t, storage.Exists(ctx, "ok.docx"))
	})

	t.Run("removes file after failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		err := file.WithTemp(ctx, storage, "fail.docx", strings.NewReader("x"), func(string) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.False(t, storage.Exists(ctx, "fail.docx"))
	})

	t.Run("removes file after panic", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			_ = file.WithTemp(ctx, storage, "panic.docx", strings.NewReader("x"), func(string) error {
				panic("unexpected")
			})
		})
		assert.False(t, storage.Exists(ctx, "panic.docx"))
	})

	t.Run("file already gone is not an error", func(t *testing.T) {
		t.Parallel()
		err := file.WithTemp(ctx, storage, "gone.docx", strings.NewReader("x"), func(string) error {
			return storage.Delete(ctx, "gone.docx")
		})
		assert.NoError(t, err)
	})

	t.Run("put failure skips callback", func(t *testing.T) {
		t.Parallel()
		called := false
		err := file.WithTemp(ctx, storage, "../escape.docx", strings.NewReader("x"), func(string) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, file.ErrInvalidPath)
		assert.False(t, called)
	})
}
