// Package rest is the single point of contact with the backend HTTP API.
// It resolves the configured base URL, attaches the stored bearer token,
// and normalizes every outcome, transport failures included, into the
// uniform result envelope so callers never handle raw errors.
package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cinvoluntario/config"
	domainerrors "cinvoluntario/internal/domain/errors"
	"cinvoluntario/internal/domain/service"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Client wraps net/http with base URL resolution, bearer injection and a
// bounded timeout. It only ever reads the token store; writing and clearing
// the token is the session manager's job.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     service.TokenStore
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, tokens service.TokenStore, logger *slog.Logger) *Client {
	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

type tokenOverrideKey struct{}

// WithToken returns a context that pins the bearer token for requests made
// with it, bypassing the store lookup. Logout uses this: the store is
// already cleared when the backend gets notified.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenOverrideKey{}, token)
}

// detailBody is the FastAPI error shape; detail may be a string or a
// structured validation report, so it stays raw until needed.
type detailBody struct {
	Detail json.RawMessage `json:"detail"`
}

// do performs one HTTP round trip and returns the status plus raw body.
// A nil error means the request reached the backend, whatever the status.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	token, _ := ctx.Value(tokenOverrideKey{}).(string)
	if token == "" {
		token, _ = c.tokens.Load(ctx)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			slog.String("method", method), slog.String("path", path), slog.Any("error", err))

		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	return resp.StatusCode, raw, nil
}

// errorMessage extracts a user-facing message from a non-2xx response.
func errorMessage(status int, raw []byte) string {
	var body detailBody
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil && len(body.Detail) > 0 {
		var detail string
		if json.Unmarshal(body.Detail, &detail) == nil && detail != "" {
			return detail
		}
	}
	if status >= http.StatusInternalServerError {
		return domainerrors.ErrBackendFault.Message()
	}

	return http.StatusText(status)
}
