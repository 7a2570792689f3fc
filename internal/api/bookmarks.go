// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
	"net/url"
)

// AddBookmark calls POST /api/bookmarks. Bookmarking an already-bookmarked
// tutorial is a no-op server-side.
func (h *HTTP) AddBookmark(ctx context.Context, token, tutorialID string) error {
	body := map[string]string{"tutorial_id": tutorialID}
	return h.do(ctx, http.MethodPost, "/api/bookmarks", token, body, nil)
}

// Bookmarks calls GET /api/bookmarks and returns the bookmarked tutorials.
func (h *HTTP) Bookmarks(ctx context.Context, token string) ([]Tutorial, error) {
	var out []Tutorial
	if err := h.do(ctx, http.MethodGet, "/api/bookmarks", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveBookmark calls DELETE /api/bookmarks/{tutorial_id}. A missing
// bookmark is reported by the backend as 404.
func (h *HTTP) RemoveBookmark(ctx context.Context, token, tutorialID string) error {
	return h.do(ctx, http.MethodDelete, "/api/bookmarks/"+url.PathEscape(tutorialID), token, nil, nil)
}

// IsBookmarked calls GET /api/bookmarks/check/{tutorial_id}.
func (h *HTTP) IsBookmarked(ctx context.Context, token, tutorialID string) (bool, error) {
	var out struct {
		Bookmarked bool `json:"bookmarked"`
	}
	if err := h.do(ctx, http.MethodGet, "/api/bookmarks/check/"+url.PathEscape(tutorialID), token, nil, &out); err != nil {
		return false, err
	}
	return out.Bookmarked, nil
}
