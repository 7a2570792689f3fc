// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
	"net/url"
)

// Tutorials calls GET /api/tutorials, newest first. Category and search
// terms are passed through as query parameters when set.
func (h *HTTP) Tutorials(ctx context.Context, token string, q TutorialQuery) ([]Tutorial, error) {
	path := "/api/tutorials"
	params := url.Values{}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out []Tutorial
	if err := h.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyTutorials calls GET /api/tutorials/my, listing the caller's own tutorials.
func (h *HTTP) MyTutorials(ctx context.Context, token string) ([]Tutorial, error) {
	var out []Tutorial
	if err := h.do(ctx, http.MethodGet, "/api/tutorials/my", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Tutorial calls GET /api/tutorials/{id}.
func (h *HTTP) Tutorial(ctx context.Context, token, id string) (*Tutorial, error) {
	var out Tutorial
	if err := h.do(ctx, http.MethodGet, "/api/tutorials/"+url.PathEscape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTutorial calls POST /api/tutorials.
func (h *HTTP) CreateTutorial(ctx context.Context, token string, in TutorialInput) (*Tutorial, error) {
	var out Tutorial
	if err := h.do(ctx, http.MethodPost, "/api/tutorials", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTutorial calls PUT /api/tutorials/{id}. Only the creator may update;
// the backend replies 403 otherwise.
func (h *HTTP) UpdateTutorial(ctx context.Context, token, id string, upd TutorialUpdate) (*Tutorial, error) {
	var out Tutorial
	if err := h.do(ctx, http.MethodPut, "/api/tutorials/"+url.PathEscape(id), token, upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTutorial calls DELETE /api/tutorials/{id}. The backend also removes
// bookmarks pointing at the deleted tutorial.
func (h *HTTP) DeleteTutorial(ctx context.Context, token, id string) error {
	return h.do(ctx, http.MethodDelete, "/api/tutorials/"+url.PathEscape(id), token, nil, nil)
}
