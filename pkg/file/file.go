package file

import (
	"context"
	"errors"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

// DefaultContentType is used when the content type cannot be derived.
const DefaultContentType = "application/octet-stream"

// Object describes a stored file.
type Object struct {
	Path        string // storage-relative, slash separated
	Size        int64
	ContentType string
}

// Storage keeps files the document service must be able to fetch by URL.
type Storage interface {
	// Put writes body to path, replacing any existing file.
	Put(ctx context.Context, path string, body io.Reader, contentType string) (*Object, error)
	// Open returns the content stored at path.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete removes the file at path.
	Delete(ctx context.Context, path string) error
	// Exists reports whether a file is stored at path.
	Exists(ctx context.Context, path string) bool
	// URL returns the address the document service downloads path from.
	URL(path string) string
}

// ContentType derives the content type from the extension of path.
func ContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return DefaultContentType
}

// WithTemp stores body at path, calls fn with the file's URL and removes the
// file afterwards. The file is removed on every return path, including when
// fn fails or panics; a cleanup failure is joined to the returned error.
func WithTemp(ctx context.Context, s Storage, path string, body io.Reader, fn func(url string) error) (err error) {
	if _, err := s.Put(ctx, path, body, ContentType(path)); err != nil {
		return err
	}
	defer func() {
		// The caller's context may already be done; cleanup must still run.
		if delErr := s.Delete(context.WithoutCancel(ctx), path); delErr != nil && !errors.Is(delErr, ErrFileNotFound) {
			err = errors.Join(err, delErr)
		}
	}()
	return fn(s.URL(path))
}

// SanitizeFilename strips path components and NUL bytes from filename.
// Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}

// objectKey normalises a storage path for key-based backends.
func objectKey(path string) (string, error) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "/")
	if path == "" || strings.Contains(path, "..") {
		return "", ErrInvalidPath
	}
	return path, nil
}
