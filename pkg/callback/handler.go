package callback

import "context"

// Handler is implemented by the host integration. Each method handles one
// tracker status and returns the code reported back to the document
// service: 0 accepts the callback. A non-nil error is reported instead of
// the code.
type Handler interface {
	OnEditing(ctx context.Context, cb Callback, fileID string) (int, error)
	OnMustSave(ctx context.Context, cb Callback, fileID string) (int, error)
	OnCorrupted(ctx context.Context, cb Callback, fileID string) (int, error)
	OnClosed(ctx context.Context, cb Callback, fileID string) (int, error)
	OnForceSave(ctx context.Context, cb Callback, fileID string) (int, error)
}

// HandlerFunc handles a single tracker status.
type HandlerFunc func(ctx context.Context, cb Callback, fileID string) (int, error)

// Funcs adapts a set of functions to Handler. Nil entries accept the
// callback with code 0.
type Funcs struct {
	Editing   HandlerFunc
	MustSave  HandlerFunc
	Corrupted HandlerFunc
	Closed    HandlerFunc
	ForceSave HandlerFunc
}

var _ Handler = Funcs{}

func (f Funcs) OnEditing(ctx context.Context, cb Callback, fileID string) (int, error) {
	return f.Editing.handle(ctx, cb, fileID)
}

func (f Funcs) OnMustSave(ctx context.Context, cb Callback, fileID string) (int, error) {
	return f.MustSave.handle(ctx, cb, fileID)
}

func (f Funcs) OnCorrupted(ctx context.Context, cb Callback, fileID string) (int, error) {
	return f.Corrupted.handle(ctx, cb, fileID)
}

func (f Funcs) OnClosed(ctx context.Context, cb Callback, fileID string) (int, error) {
	return f.Closed.handle(ctx, cb, fileID)
}

func (f Funcs) OnForceSave(ctx context.Context, cb Callback, fileID string) (int, error) {
	return f.ForceSave.handle(ctx, cb, fileID)
}

func (fn HandlerFunc) handle(ctx context.Context, cb Callback, fileID string) (int, error) {
	if fn == nil {
		return 0, nil
	}
	return fn(ctx, cb, fileID)
}
