package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/docsdk/pkg/callback"
	"github.com/dmitrymomot/docsdk/pkg/docservice"
	"github.com/dmitrymomot/docsdk/pkg/document"
	"github.com/dmitrymomot/docsdk/pkg/editorconfig"
	"github.com/dmitrymomot/docsdk/pkg/file"
	"github.com/dmitrymomot/docsdk/pkg/logger"
)

// Codes returned to the document server from save callbacks.
const (
	callbackOK     = 0
	callbackFailed = 1
)

// host is a storage-backed integration: every file is stored under its id
// and its revision counter changes on each save.
type host struct {
	storage   file.Storage
	client    *docservice.Client
	publicURL string
	logger    *slog.Logger

	mu       sync.Mutex
	versions map[string]int
}

var (
	_ callback.Handler    = (*host)(nil)
	_ editorconfig.Source = (*host)(nil)
)

func newHost(storage file.Storage, client *docservice.Client, publicURL string, log *slog.Logger) *host {
	return &host{
		storage:   storage,
		client:    client,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    log.With(logger.Component("host")),
		versions:  make(map[string]int),
	}
}

func (h *host) DocumentName(ctx context.Context, fileID string) (string, error) {
	if !h.storage.Exists(ctx, fileID) {
		return "", document.ErrFileNotFound
	}
	return fileID, nil
}

func (h *host) DocumentKey(_ context.Context, fileID string, _ bool) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fileID + "-" + strconv.Itoa(h.versions[fileID]), nil
}

func (h *host) FileURL(_ context.Context, fileID string) (string, error) {
	return h.publicURL + "/download/" + url.PathEscape(fileID), nil
}

func (h *host) CallbackURL(_ context.Context, fileID string) (string, error) {
	return h.publicURL + "/callback/" + url.PathEscape(fileID), nil
}

func (h *host) GoBackURL(context.Context, string) (string, error) {
	return h.publicURL + "/", nil
}

// Path implements document.PathFunc: file ids are storage paths.
func (h *host) Path(_ context.Context, fileID string) (string, error) {
	return fileID, nil
}

func (h *host) OnEditing(ctx context.Context, cb callback.Callback, fileID string) (int, error) {
	h.logger.DebugContext(ctx, "document is being edited",
		logger.FileID(fileID),
		logger.DocumentKey(cb.Key),
		slog.Any("users", cb.Users),
	)
	return callbackOK, nil
}

func (h *host) OnMustSave(ctx context.Context, cb callback.Callback, fileID string) (int, error) {
	return h.save(ctx, cb, fileID), nil
}

func (h *host) OnForceSave(ctx context.Context, cb callback.Callback, fileID string) (int, error) {
	return h.save(ctx, cb, fileID), nil
}

func (h *host) OnCorrupted(ctx context.Context, cb callback.Callback, fileID string) (int, error) {
	h.logger.ErrorContext(ctx, "document server reported a saving error",
		logger.FileID(fileID),
		logger.DocumentKey(cb.Key),
	)
	return callbackOK, nil
}

func (h *host) OnClosed(ctx context.Context, cb callback.Callback, fileID string) (int, error) {
	h.logger.DebugContext(ctx, "document closed without changes", logger.FileID(fileID), logger.DocumentKey(cb.Key))
	return callbackOK, nil
}

// save downloads the edited document, converting it back to the stored
// format when the editor produced another one. Failures are reported with
// callbackFailed so the document server keeps the changes and retries.
func (h *host) save(ctx context.Context, cb callback.Callback, fileID string) int {
	if err := h.store(ctx, cb, fileID); err != nil {
		h.logger.ErrorContext(ctx, "failed to save document",
			logger.FileID(fileID),
			logger.DocumentKey(cb.Key),
			logger.Error(err),
		)
		return callbackFailed
	}

	h.mu.Lock()
	h.versions[fileID]++
	h.mu.Unlock()

	h.logger.InfoContext(ctx, "document saved",
		logger.FileID(fileID),
		logger.DocumentKey(cb.Key),
		logger.Status(int(cb.Status)),
	)
	return callbackOK
}

func (h *host) store(ctx context.Context, cb callback.Callback, fileID string) error {
	if cb.URL == "" {
		return fmt.Errorf("callback without document url")
	}

	source := cb.URL
	if ext := document.Ext(fileID); cb.FileType != "" && ext != "" && cb.FileType != ext {
		converted, err := h.client.ConvertedURI(ctx, docservice.ConvertRequest{
			DocumentURI: cb.URL,
			FromExt:     cb.FileType,
			ToExt:       ext,
			RevisionID:  cb.Key,
		})
		if err != nil {
			return fmt.Errorf("convert %s to %s: %w", cb.FileType, ext, err)
		}
		if converted == "" {
			return fmt.Errorf("conversion to %s did not finish", ext)
		}
		source = converted
	}
	if r, ok := h.client.Settings().(interface{ ReplaceDocumentServerURLToInternal(string) string }); ok {
		source = r.ReplaceDocumentServerURLToInternal(source)
	}

	data, err := h.client.Fetch(ctx, source)
	if err != nil {
		return fmt.Errorf("download edited document: %w", err)
	}
	_, err = h.storage.Put(ctx, fileID, bytes.NewReader(data), file.ContentType(fileID))
	return err
}

// createEmpty stores a blank DOCX under fileID unless it already exists.
func (h *host) createEmpty(ctx context.Context, fileID string) (bool, error) {
	if document.Ext(fileID) != "docx" {
		return false, document.ErrUnknownExtension
	}
	if h.storage.Exists(ctx, fileID) {
		return false, nil
	}
	body, err := document.EmptyDocx()
	if err != nil {
		return false, err
	}
	if _, err := h.storage.Put(ctx, fileID, bytes.NewReader(body), document.DocxMimeType); err != nil {
		return false, err
	}
	return true, nil
}
