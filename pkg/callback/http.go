package callback

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"mime"
	"net/http"

	"github.com/dmitrymomot/docsdk/pkg/document"
	"github.com/dmitrymomot/docsdk/pkg/errcode"
	"github.com/dmitrymomot/docsdk/pkg/jwt"
	"github.com/dmitrymomot/docsdk/pkg/logger"
)

// Response is the reply to an accepted callback.
type Response struct {
	Error int `json:"error"`
}

// ErrorResponse is the reply to a rejected request.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// CallbackHandler serves the save-callback endpoint. The handler's result
// code is returned as {"error": code}; failures are returned as
// {"status": "error", "error": message} with a matching HTTP status.
func (s *Service) CallbackHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		fileID := s.fileID(r)

		cb, err := Parse(r.Body)
		if err != nil {
			s.reject(w, r, fileID, err)
			return
		}

		code, err := s.Process(ctx, cb, r.Header.Get(s.settings.JWTHeader()), fileID)
		if err != nil {
			s.reject(w, r, fileID, err)
			return
		}

		writeJSON(w, http.StatusOK, Response{Error: code})
	})
}

// DownloadHandler streams a host file to the document service. The request
// is authenticated with the header token when JWT is enabled. An empty
// resolved path yields 404.
func (s *Service) DownloadHandler(resolver document.Resolver) (http.Handler, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}

	serve := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		fileID := s.fileID(r)

		path, err := resolver.FilePath(ctx, fileID)
		if err != nil {
			s.reject(w, r, fileID, err)
			return
		}
		if path == "" {
			s.reject(w, r, fileID, document.ErrFileNotFound)
			return
		}

		rc, err := resolver.Open(ctx, path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				err = errcode.Wrap(errcode.ErrNotFound, errcode.CommonFileNotFound, err)
			}
			s.reject(w, r, fileID, err)
			return
		}
		defer func() { _ = rc.Close() }()

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
			"filename": document.BaseName(path),
		}))
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, rc); err != nil {
			s.logger.WarnContext(ctx, "download interrupted", logger.FileID(fileID), logger.Error(err))
		}
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jwt.Middleware(jwt.MiddlewareConfig{
			Codec:  s.codec,
			Header: s.settings.JWTHeader(),
			Prefix: s.settings.JWTPrefix(),
			ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
				s.reject(w, r, s.fileID(r), err)
			},
		})(serve).ServeHTTP(w, r)
	}), nil
}

func (s *Service) reject(w http.ResponseWriter, r *http.Request, fileID string, err error) {
	status := StatusCode(err)
	s.logger.WarnContext(r.Context(), "request rejected",
		logger.FileID(fileID),
		logger.HTTPStatus(status),
		logger.Error(err),
	)
	writeJSON(w, status, ErrorResponse{Status: "error", Error: errcode.Message(err)})
}

// StatusCode maps an error kind to the HTTP status returned to the
// document service.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errcode.ErrAuth):
		return http.StatusForbidden
	case errors.Is(err, errcode.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errcode.ErrProtocol):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
