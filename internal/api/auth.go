// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// tokenResponse is the payload of POST /api/auth/login and /api/auth/register.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// Login calls POST /api/auth/login with email/password credentials.
// On 401 the server's detail message (e.g. "Invalid email or password") is
// surfaced verbatim; the unauthorized hook is not involved since no bearer
// token was presented.
func (h *HTTP) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var out tokenResponse
	if err := h.do(ctx, http.MethodPost, "/api/auth/login", "", body, &out); err != nil {
		return nil, err
	}
	return &Credentials{Token: out.AccessToken, User: out.User}, nil
}

// Register calls POST /api/auth/register. The backend enforces email
// uniqueness and replies 400 with a detail message on duplicates.
func (h *HTTP) Register(ctx context.Context, name, email, password string) (*Credentials, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var out tokenResponse
	if err := h.do(ctx, http.MethodPost, "/api/auth/register", "", body, &out); err != nil {
		return nil, err
	}
	return &Credentials{Token: out.AccessToken, User: out.User}, nil
}

// Me calls GET /api/auth/me with the Authorization header. This is the
// cheapest authenticated call and doubles as the point-of-use validity check
// for a hydrated token.
func (h *HTTP) Me(ctx context.Context, token string) (*User, error) {
	var u User
	if err := h.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile calls PUT /api/auth/profile. Only non-nil fields of upd are
// sent; the backend returns the full updated user record.
func (h *HTTP) UpdateProfile(ctx context.Context, token string, upd ProfileUpdate) (*User, error) {
	var u User
	if err := h.do(ctx, http.MethodPut, "/api/auth/profile", token, upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
