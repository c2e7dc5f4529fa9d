package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/docsdk/pkg/callback"
	"github.com/dmitrymomot/docsdk/pkg/editorconfig"
	"github.com/dmitrymomot/docsdk/pkg/errcode"
	"github.com/dmitrymomot/docsdk/pkg/healthcheck"
	"github.com/dmitrymomot/docsdk/pkg/httpserver"
	"github.com/dmitrymomot/docsdk/pkg/logger"
)

type routerDeps struct {
	host      *host
	callbacks *callback.Service
	download  http.Handler
	builder   *editorconfig.Builder
	checker   *healthcheck.Checker
	checks    []httpserver.Check
	logger    *slog.Logger
}

// fileIDParam reads the {fileID} route parameter.
func fileIDParam(r *http.Request) string {
	return chi.URLParam(r, "fileID")
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(d.logger, 0, d.checks...))
	r.Get("/check", checkHandler(d.checker))

	r.Post("/callback/{fileID}", d.callbacks.CallbackHandler().ServeHTTP)
	r.Get("/download/{fileID}", d.download.ServeHTTP)
	r.Get("/editor/{fileID}", editorHandler(d.builder, d.logger))
	r.Put("/files/{fileID}", createHandler(d.host))

	return r
}

// checkHandler reports the document server check for the calling page.
func checkHandler(c *healthcheck.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := c.Check(r.Context(), healthcheck.IsSecureRequest(r))
		status := http.StatusOK
		if !res.OK() {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, res)
	}
}

func editorHandler(b *editorconfig.Builder, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := editorconfig.Request{
			FileID:    fileIDParam(r),
			UserAgent: r.UserAgent(),
			Embedded:  q.Get("embedded") == "true",
			Lang:      q.Get("lang"),
		}
		if q.Get("mode") == string(editorconfig.ModeView) {
			req.Mode = editorconfig.ModeView
		}
		if id := q.Get("user"); id != "" {
			req.User = &editorconfig.User{ID: id, Name: q.Get("name")}
		}

		cfg, err := b.Build(r.Context(), req)
		if err != nil {
			status := callback.StatusCode(err)
			log.WarnContext(r.Context(), "editor config failed", logger.FileID(req.FileID), logger.Error(err))
			writeJSON(w, status, callback.ErrorResponse{Status: "error", Error: errcode.Message(err)})
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

func createHandler(h *host) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := h.createEmpty(r.Context(), fileIDParam(r))
		switch {
		case errors.Is(err, errcode.ErrNotFound):
			writeJSON(w, http.StatusBadRequest, callback.ErrorResponse{Status: "error", Error: errcode.Message(err)})
		case err != nil:
			writeJSON(w, http.StatusInternalServerError, callback.ErrorResponse{Status: "error", Error: errcode.Message(err)})
		case created:
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
