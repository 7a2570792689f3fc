// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, "hunter2", body["password"])

		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": "tok-abc",
			"token_type":   "bearer",
			"user": map[string]any{
				"id":        "u-1",
				"email":     "ada@example.com",
				"name":      "Ada",
				"onboarded": true,
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	creds, err := client.Login(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", creds.Token)
	assert.Equal(t, "u-1", creds.User.ID)
	assert.True(t, creds.User.Onboarded)
}

func TestLoginRejectedDetailVerbatim(t *testing.T) {
	hookFired := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Invalid email or password"})
	}))
	defer srv.Close()

	client := New(srv.URL, WithUnauthorizedHook(func() { hookFired = true }))
	_, err := client.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindRejected, apiErr.Kind)
	assert.Equal(t, "Invalid email or password", apiErr.Detail)

	// no bearer token was presented, so this 401 is a rejection, not expiry
	assert.False(t, hookFired)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestMeSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, map[string]any{"id": "u-1", "email": "ada@example.com"})
	}))
	defer srv.Close()

	user, err := New(srv.URL).Me(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

func TestUnauthorizedHookFiresOnStaleToken(t *testing.T) {
	hookFired := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
	}))
	defer srv.Close()

	client := New(srv.URL, WithUnauthorizedHook(func() { hookFired = true }))
	_, err := client.Me(context.Background(), "stale-token")

	require.Error(t, err)
	assert.True(t, hookFired)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Could not validate credentials", Detail(err, "fallback"))
}

func TestUpdateProfileSendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/auth/profile", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"name": "Grace"}, body)

		writeJSON(t, w, http.StatusOK, map[string]any{"id": "u-1", "name": "Grace"})
	}))
	defer srv.Close()

	name := "Grace"
	user, err := New(srv.URL).UpdateProfile(context.Background(), "tok", ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Grace", user.Name)
}

func TestTutorialsQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tutorials", r.URL.Path)
		assert.Equal(t, "Technology", r.URL.Query().Get("category"))
		assert.Equal(t, "docker", r.URL.Query().Get("search"))
		writeJSON(t, w, http.StatusOK, []map[string]any{{"id": "t-1", "title": "Docker 101"}})
	}))
	defer srv.Close()

	got, err := New(srv.URL).Tutorials(context.Background(), "tok", TutorialQuery{Category: "Technology", Search: "docker"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Docker 101", got[0].Title)
}

func TestTutorialPathEscaping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tutorials/a%2Fb", r.URL.EscapedPath())
		writeJSON(t, w, http.StatusOK, map[string]any{"id": "a/b"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Tutorial(context.Background(), "tok", "a/b")
	require.NoError(t, err)
}

func TestDeleteTutorialForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(t, w, http.StatusForbidden, map[string]string{"detail": "Not authorized to delete this tutorial"})
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteTutorial(context.Background(), "tok", "t-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: KindRejected})
	assert.Equal(t, "Not authorized to delete this tutorial", Detail(err, ""))
}

func TestBookmarkRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/bookmarks":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "t-1", body["tutorial_id"])
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "Bookmark added"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/bookmarks/check/t-1":
			writeJSON(t, w, http.StatusOK, map[string]bool{"bookmarked": true})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/bookmarks/t-1":
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "Bookmark removed"})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := New(srv.URL)
	require.NoError(t, client.AddBookmark(context.Background(), "tok", "t-1"))

	bookmarked, err := client.IsBookmarked(context.Background(), "tok", "t-1")
	require.NoError(t, err)
	assert.True(t, bookmarked)

	require.NoError(t, client.RemoveBookmark(context.Background(), "tok", "t-1"))
}

func TestServerErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Me(context.Background(), "tok")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindServer, apiErr.Kind)
	assert.Equal(t, "boom", apiErr.Detail)
}

func TestTransportErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := New(srv.URL).Me(context.Background(), "tok")
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: KindTransport})

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.NotNil(t, apiErr.Err)
}
