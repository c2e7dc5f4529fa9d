package healthcheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/docsdk/pkg/docservice"
	"github.com/dmitrymomot/docsdk/pkg/document"
	"github.com/dmitrymomot/docsdk/pkg/errcode"
	"github.com/dmitrymomot/docsdk/pkg/file"
	"github.com/dmitrymomot/docsdk/pkg/logger"
	"github.com/dmitrymomot/docsdk/pkg/settings"
)

// Result is the outcome of a check. Error is empty on success; Version is
// whatever version was seen before the check stopped.
type Result struct {
	Error   string `json:"error"`
	Version string `json:"version"`
}

// OK reports whether every step passed.
func (r Result) OK() bool { return r.Error == "" }

// Err returns nil on success and an ErrCheckFailed error otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrCheckFailed, r.Error)
}

// Checker validates the configured document server. Steps run in order
// and the first failure ends the check.
type Checker struct {
	client     *docservice.Client
	settings   settings.Provider
	storage    file.Storage
	logger     *slog.Logger
	minVersion float64
	newKey     func() string
}

// Option configures a Checker.
type Option func(*Checker)

// WithStorage enables the round-trip conversion probe. The storage URL must
// be reachable by the document server.
func WithStorage(s file.Storage) Option {
	return func(c *Checker) { c.storage = s }
}

// WithLogger sets the logger used for failed steps.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMinVersion overrides MinSupportedVersion.
func WithMinVersion(v float64) Option {
	return func(c *Checker) { c.minVersion = v }
}

// WithKeyFunc overrides the generator of probe document keys.
func WithKeyFunc(fn func() string) Option {
	return func(c *Checker) {
		if fn != nil {
			c.newKey = fn
		}
	}
}

// New creates a Checker that uses client and its settings.
func New(client *docservice.Client, opts ...Option) (*Checker, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	c := &Checker{
		client:     client,
		settings:   client.Settings(),
		logger:     slog.Default(),
		minVersion: MinSupportedVersion,
		newKey:     func() string { return "check_" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("healthcheck"))
	return c, nil
}

// Check runs the reachability steps. secure tells whether the host page is
// served over HTTPS; a plain HTTP document server is then rejected as mixed
// content. The first two steps never touch the network.
func (c *Checker) Check(ctx context.Context, secure bool) Result {
	serverURL := c.settings.DocumentServerURL()
	if serverURL == "" {
		return c.fail(ctx, "url", Result{}, errcode.CommonNoDocumentServerURL, nil)
	}

	if secure && settings.IsHTTP(serverURL) {
		return c.fail(ctx, "mixed_content", Result{}, errcode.CommonMixedContent, nil)
	}

	healthy, err := c.client.Healthcheck(ctx)
	if err != nil || !healthy {
		return c.fail(ctx, "healthcheck", Result{}, errcode.CommonBadHealthcheckStatus, err)
	}

	version, err := c.client.Version(ctx)
	res := Result{Version: version}
	if err != nil {
		return c.fail(ctx, "version", res, errcode.CommonBadHealthcheckStatus, err)
	}
	if !Supported(version, c.minVersion) {
		return c.fail(ctx, "version", res, errcode.CommonNotSupportedVersion, nil)
	}

	if c.storage != nil {
		if err := c.probe(ctx); err != nil {
			return c.fail(ctx, "convert", res, errcode.CommonDocserviceError, err)
		}
	}

	return res
}

// Probe adapts Check to readiness checks of the form func(ctx) error.
func (c *Checker) Probe(secure bool) func(context.Context) error {
	return func(ctx context.Context) error {
		return c.Check(ctx, secure).Err()
	}
}

// probe converts an empty DOCX stored as a temporary file and downloads the
// result. The temporary file is removed on every path.
func (c *Checker) probe(ctx context.Context) error {
	body, err := document.EmptyDocx()
	if err != nil {
		return err
	}

	key := c.newKey()
	return file.WithTemp(ctx, c.storage, key+".docx", bytes.NewReader(body), func(sourceURL string) error {
		converted, err := c.client.ConvertedURI(ctx, docservice.ConvertRequest{
			DocumentURI: sourceURL,
			FromExt:     "docx",
			ToExt:       "docx",
			RevisionID:  key,
		})
		if err != nil {
			return err
		}
		if converted == "" {
			return errcode.New(errcode.ErrDocService, errcode.CommonDocserviceError)
		}
		if r, ok := c.settings.(interface{ ReplaceDocumentServerURLToInternal(string) string }); ok {
			converted = r.ReplaceDocumentServerURLToInternal(converted)
		}
		_, err = c.client.Fetch(ctx, converted)
		return err
	})
}

// fail records a failed step. Messages of table errors are kept; anything
// else is reported with the step's fixed message.
func (c *Checker) fail(ctx context.Context, step string, res Result, fallback errcode.CommonError, cause error) Result {
	res.Error = fallback.Message()
	var se *errcode.ServiceError
	if errors.As(cause, &se) {
		res.Error = se.Message
	}

	attrs := []any{logger.Step(step), logger.Version(res.Version)}
	if cause != nil {
		attrs = append(attrs, logger.Error(cause))
	}
	c.logger.WarnContext(ctx, "document server check failed: "+res.Error, attrs...)
	return res
}

// IsSecureRequest reports whether r reached the host over HTTPS, directly
// or through a TLS-terminating proxy.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
