package docservice

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/docsdk/pkg/errcode"
	"github.com/dmitrymomot/docsdk/pkg/jwt"
	"github.com/dmitrymomot/docsdk/pkg/logger"
	"github.com/dmitrymomot/docsdk/pkg/settings"
)

const (
	// DefaultTimeout applies to every request without an explicit timeout.
	DefaultTimeout = 60 * time.Second
	// ConvertTimeout applies to conversion requests.
	ConvertTimeout = 120 * time.Second

	maxResponseSize = 32 << 20
	maxRedirects    = 10
	userAgent       = "docsdk/1.0"

	// RequestIDHeader carries a per-request correlation ID. A value already
	// set on Request.Header is kept.
	RequestIDHeader = "X-Request-ID"
)

// Request is a single call to the document server.
type Request struct {
	URL     string
	Method  string // GET when empty
	Header  http.Header
	Body    []byte
	Timeout time.Duration // DefaultTimeout when zero
}

// Response is the buffered reply of a successful call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client talks to the document server: it signs outbound payloads when a
// JWT secret is configured and maps service error codes to errcode errors.
// Safe for concurrent use.
type Client struct {
	settings settings.Provider
	codec    *jwt.Codec

	secure    *http.Client
	insecure  *http.Client
	custom    *http.Client
	breaker   *CircuitBreaker
	logger    *slog.Logger
	userAgent string
}

// New creates a Client reading endpoints and JWT configuration from p.
func New(p settings.Provider, opts ...Option) *Client {
	c := &Client{
		settings:  p,
		codec:     jwt.NewCodec(p),
		secure:    newHTTPClient(false),
		insecure:  newHTTPClient(true),
		logger:    slog.Default(),
		userAgent: userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("docservice"))
	return c
}

func newHTTPClient(skipVerify bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10
	transport.IdleConnTimeout = 90 * time.Second
	if skipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in through HTTP_IGNORE_SSL
	}
	return &http.Client{
		Transport: transport,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}

// Codec returns the token codec bound to the client's settings.
func (c *Client) Codec() *jwt.Codec { return c.codec }

// Settings returns the provider the client was created with.
func (c *Client) Settings() settings.Provider { return c.settings }

func (c *Client) httpClient() *http.Client {
	if c.custom != nil {
		return c.custom
	}
	if c.settings != nil && c.settings.IgnoreSSL() {
		return c.insecure
	}
	return c.secure
}

// Send performs req and returns the buffered response. Network failures,
// timeouts and any status other than 200 fail with errcode.ErrTransport.
// TLS certificates are verified unless the ignore-SSL setting is on.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, req.URL)
	}

	if c.breaker != nil && !c.breaker.Allow() {
		return nil, ErrCircuitOpen
	}

	resp, err := c.do(ctx, req)
	if c.breaker != nil {
		if err == nil {
			c.breaker.RecordSuccess()
		} else {
			c.breaker.RecordFailure()
		}
	}
	return resp, err
}

func (c *Client) do(ctx context.Context, req Request) (*Response, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if httpReq.Header.Get(RequestIDHeader) == "" {
		httpReq.Header.Set(RequestIDHeader, uuid.NewString())
	}

	start := time.Now()
	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "document server request failed",
			logger.Endpoint(req.URL),
			slog.String("request_id", httpReq.Header.Get(RequestIDHeader)),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "document server returned unexpected status",
			logger.Endpoint(req.URL),
			logger.HTTPStatus(resp.StatusCode),
			logger.Duration(time.Since(start)),
		)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// SignedRequest POSTs payload as JSON to target. When JWT is enabled the
// request carries a token over {"payload": payload} in the configured header
// and a token over payload itself in the body's "token" field. A missing
// header or prefix fails with errcode.ErrConfig before any network call.
func (c *Client) SignedRequest(ctx context.Context, target string, payload any, timeout time.Duration) (*Response, error) {
	body, err := toObject(payload)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	if c.codec.Enabled() {
		jwtHeader, jwtPrefix := c.settings.JWTHeader(), c.settings.JWTPrefix()
		if jwtHeader == "" {
			return nil, errcode.Config(errcode.CommonNoJwtHeader)
		}
		if jwtPrefix == "" {
			return nil, errcode.Config(errcode.CommonNoJwtPrefix)
		}

		headerToken, err := c.codec.Encode(map[string]any{"payload": body})
		if err != nil {
			return nil, err
		}
		bodyToken, err := c.codec.Encode(body)
		if err != nil {
			return nil, err
		}
		header.Set(jwtHeader, jwtPrefix+headerToken)
		body["token"] = bodyToken
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return c.Send(ctx, Request{
		URL:     target,
		Method:  http.MethodPost,
		Header:  header,
		Body:    raw,
		Timeout: timeout,
	})
}

// toObject copies payload into a fresh JSON object so the token field can be
// added without touching the caller's value.
func toObject(payload any) (map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	obj := map[string]any{}
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, ErrInvalidPayload
	}
	return obj, nil
}
