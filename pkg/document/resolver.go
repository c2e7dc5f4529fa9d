package document

import (
	"context"
	"io"
)

// Resolver is the host-side document collaborator used by the download
// handler. FilePath returns "" when fileID is unknown.
type Resolver interface {
	FilePath(ctx context.Context, fileID string) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Opener opens stored files by path. file.Storage satisfies it.
type Opener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// PathFunc maps a file id to a stored path.
type PathFunc func(ctx context.Context, fileID string) (string, error)

// StorageResolver resolves ids through a PathFunc and opens files through
// an Opener.
type StorageResolver struct {
	files Opener
	paths PathFunc
}

// NewStorageResolver creates a Resolver. A nil paths treats the file id as
// the stored path.
func NewStorageResolver(files Opener, paths PathFunc) (*StorageResolver, error) {
	if files == nil {
		return nil, ErrNilOpener
	}
	if paths == nil {
		paths = func(_ context.Context, fileID string) (string, error) { return fileID, nil }
	}
	return &StorageResolver{files: files, paths: paths}, nil
}

func (r *StorageResolver) FilePath(ctx context.Context, fileID string) (string, error) {
	return r.paths(ctx, fileID)
}

func (r *StorageResolver) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return r.files.Open(ctx, path)
}
