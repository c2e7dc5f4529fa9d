package docservice

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/docsdk/pkg/errcode"
)

// Command service methods.
const (
	CommandVersion   = "version"
	CommandForceSave = "forcesave"
	CommandDrop      = "drop"
	CommandInfo      = "info"
	CommandMeta      = "meta"
)

// CommandResult is the command service reply.
type CommandResult struct {
	Error   int    `json:"error"`
	Key     string `json:"key,omitempty"`
	Version string `json:"version,omitempty"`
}

// Command calls the command service with {"c": method} merged with extra.
// A non-zero error code is returned as an errcode.ErrDocService error
// together with the parsed result.
func (c *Client) Command(ctx context.Context, method string, extra map[string]any) (*CommandResult, error) {
	endpoint := c.settings.CommandServiceURL(true)
	if endpoint == "" {
		return nil, errcode.Config(errcode.CommonNoCommandEndpoint)
	}

	payload := make(map[string]any, len(extra)+1)
	for k, v := range extra {
		payload[k] = v
	}
	payload["c"] = method

	resp, err := c.SignedRequest(ctx, endpoint, payload, DefaultTimeout)
	if err != nil {
		return nil, err
	}

	var result CommandResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, errcode.Wrap(errcode.ErrProtocol, errcode.CommonBadResponseJSON, err)
	}
	if err := errcode.CommandError(result.Error); err != nil {
		return &result, err
	}
	return &result, nil
}

// Version returns the document server version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	result, err := c.Command(ctx, CommandVersion, nil)
	if err != nil {
		return "", err
	}
	return result.Version, nil
}

// Healthcheck calls the healthcheck endpoint. It reports true only when the
// body is exactly "true".
func (c *Client) Healthcheck(ctx context.Context) (bool, error) {
	endpoint := c.settings.HealthcheckURL(true)
	if endpoint == "" {
		return false, errcode.Config(errcode.CommonNoHealthcheckEndpoint)
	}

	resp, err := c.Send(ctx, Request{URL: endpoint, Method: http.MethodGet})
	if err != nil {
		return false, err
	}
	return string(resp.Body) == "true", nil
}

// Fetch downloads target, following the same TLS policy as other calls.
func (c *Client) Fetch(ctx context.Context, target string) ([]byte, error) {
	resp, err := c.Send(ctx, Request{URL: target, Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
