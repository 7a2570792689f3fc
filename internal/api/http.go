// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTP implements Client over the REST endpoints of the Findhub backend.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g. "https://api.findhub.app")
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	// onUnauthorized, when set, is invoked whenever an authenticated call is
	// refused with 401. It lets the session layer expire a stale token the
	// moment staleness is observed.
	onUnauthorized func()
}

// Option configures the HTTP client.
type Option func(*HTTP)

// WithHTTPClient replaces the default HTTP client (10s timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) { h.client = c }
}

// WithUnauthorizedHook registers fn to run when an authenticated request
// comes back 401. Unauthenticated requests (login, register) never fire it.
func WithUnauthorizedHook(fn func()) Option {
	return func(h *HTTP) { h.onUnauthorized = fn }
}

func newHTTP(baseURL string, opts ...Option) *HTTP {
	h := &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// do performs one JSON round-trip. A non-empty token is sent as a Bearer
// credential. body and out may be nil. Non-2xx responses are turned into
// *Error values carrying the server's detail message.
func (h *HTTP) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return h.errorFromResponse(resp, token != "")
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}
	return nil
}

// errorFromResponse classifies a non-2xx response. A 401 on an authenticated
// call means the stored token went stale; that is reported to the session
// layer through the unauthorized hook.
func (h *HTTP) errorFromResponse(resp *http.Response, authed bool) error {
	detail := decodeDetail(resp.Body)
	switch {
	case resp.StatusCode == http.StatusUnauthorized && authed:
		if h.onUnauthorized != nil {
			h.onUnauthorized()
		}
		return &Error{Kind: KindUnauthorized, Status: resp.StatusCode, Detail: detail}
	case resp.StatusCode >= http.StatusInternalServerError:
		return &Error{Kind: KindServer, Status: resp.StatusCode, Detail: detail}
	default:
		return &Error{Kind: KindRejected, Status: resp.StatusCode, Detail: detail}
	}
}

// decodeDetail extracts the backend's {"detail": "..."} error message.
// Falls back to the raw body text when the shape is different.
func decodeDetail(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(b, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(b))
}
