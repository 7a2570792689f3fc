// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a machine-readable category for request failures.
type Kind string

const (
	// KindTransport means no usable response reached us (DNS, refused,
	// timeout, malformed body).
	KindTransport Kind = "transport"
	// KindRejected means the server understood the request and said no
	// (bad credentials, duplicate email, missing resource).
	KindRejected Kind = "rejected"
	// KindUnauthorized means a previously valid bearer token was refused.
	KindUnauthorized Kind = "unauthorized"
	// KindServer means a 5xx response.
	KindServer Kind = "server"
)

// Error wraps a request failure with its kind, HTTP status, and the
// server-provided detail message when one was available.
type Error struct {
	Kind   Kind
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches errors of the same Kind, so callers can compare against the
// exported sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// ErrUnauthorized is reported when an authenticated call is refused with 401,
// meaning the stored token went stale server-side.
var ErrUnauthorized = &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized}

// Detail extracts a human-readable message from err, preferring the server's
// detail text and falling back to the given generic message.
func Detail(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
