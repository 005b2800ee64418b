package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cinvoluntario/internal/domain/entity"
	domainerrors "cinvoluntario/internal/domain/errors"
)

// The HTTP verbs are package-level generic functions because Go methods
// cannot carry type parameters. All of them are safe to call concurrently;
// the client holds no mutable state beyond the read-only token lookup.

// Get performs a GET request and decodes the response into T.
func Get[T any](ctx context.Context, c *Client, path string) entity.Envelope[T] {
	return request[T](ctx, c, http.MethodGet, path, contentTypeJSON, nil)
}

// Post performs a POST request with an optional JSON body.
func Post[T any](ctx context.Context, c *Client, path string, body any) entity.Envelope[T] {
	reader, err := encodeJSON(body)
	if err != nil {
		return entity.Fail[T](domainerrors.ErrInternalError.Message())
	}

	return request[T](ctx, c, http.MethodPost, path, contentTypeJSON, reader)
}

// Put performs a PUT request with an optional JSON body.
func Put[T any](ctx context.Context, c *Client, path string, body any) entity.Envelope[T] {
	reader, err := encodeJSON(body)
	if err != nil {
		return entity.Fail[T](domainerrors.ErrInternalError.Message())
	}

	return request[T](ctx, c, http.MethodPut, path, contentTypeJSON, reader)
}

// Delete performs a DELETE request.
func Delete[T any](ctx context.Context, c *Client, path string) entity.Envelope[T] {
	return request[T](ctx, c, http.MethodDelete, path, contentTypeJSON, nil)
}

// PostForm performs a POST with form-encoded values. The token endpoint is
// the one consumer; everything else on the backend speaks JSON.
func PostForm[T any](ctx context.Context, c *Client, path string, form url.Values) entity.Envelope[T] {
	body := strings.NewReader(form.Encode())

	return request[T](ctx, c, http.MethodPost, path, contentTypeForm, body)
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(raw), nil
}

func request[T any](ctx context.Context, c *Client, method, path, contentType string, body io.Reader) entity.Envelope[T] {
	status, raw, err := c.do(ctx, method, path, contentType, body)
	if err != nil {
		// Transport failure: the request never completed. Surfaced as a
		// connection error, never as a Go error to the caller.
		return entity.Fail[T](domainerrors.ErrConnection.Message())
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return entity.FailStatus[T](errorMessage(status, raw), status)
	}

	var data T
	if status == http.StatusNoContent || len(raw) == 0 {
		return entity.OkStatus(data, status)
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return entity.FailStatus[T](domainerrors.ErrBackendFault.Message(), status)
	}

	return entity.OkStatus(data, status)
}
