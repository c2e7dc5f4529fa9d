// Package callback handles the document service's save callbacks and file
// download requests.
//
// Each callback is an independent request: Service.Authenticate verifies
// it, Callback.Validate checks required fields and Service.Dispatch calls
// the host Handler method matching the tracker status:
//
//	Editing(1)            -> OnEditing
//	MustSave(2)           -> OnMustSave
//	Corrupted(3)          -> OnCorrupted
//	Closed(4)             -> OnClosed
//	ForceSave(6)          -> OnForceSave
//	CorruptedForceSave(7) -> OnForceSave
//
// Any other status fails with errcode.ErrUnknownStatus and no handler runs.
//
// # Authentication
//
// When no JWT secret is configured callbacks are trusted as received. With
// a secret, the token embedded in the body is preferred; otherwise the
// configured header is read and the configured prefix ("Bearer ") is
// stripped before the token is decoded. Header tokens carry the callback
// under a "payload" claim.
//
// # HTTP
//
//	svc, err := callback.NewService(snapshot, callback.Funcs{
//	    MustSave: func(ctx context.Context, cb callback.Callback, fileID string) (int, error) {
//	        return 0, store.SaveFrom(ctx, fileID, cb.URL)
//	    },
//	}, callback.WithFileIDFunc(func(r *http.Request) string {
//	    return chi.URLParam(r, "fileID")
//	}))
//
//	r.Post("/callback/{fileID}", svc.CallbackHandler().ServeHTTP)
//
// Accepted callbacks are answered with {"error": <code>}; rejected ones with
// {"status": "error", "error": "<message>"} and a 4xx/5xx status.
package callback
