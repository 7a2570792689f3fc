// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api implements the client for the Findhub REST backend.
// It defines the API contract for authentication, profile management,
// tutorials, and bookmarks. The package includes both the interface
// definition and the HTTP-based implementation.
package api

import "context"

// Client defines the backend operations the CLI depends on.
// Implementations may call the real REST endpoints or provide fakes for tests.
type Client interface {
	// Login exchanges email/password for a bearer token and the user record.
	Login(ctx context.Context, email, password string) (*Credentials, error)
	// Register creates a new account; new users start un-onboarded.
	Register(ctx context.Context, name, email, password string) (*Credentials, error)
	// Me returns the account the given token belongs to.
	Me(ctx context.Context, token string) (*User, error)
	// UpdateProfile applies a partial profile update and returns the
	// full updated user record.
	UpdateProfile(ctx context.Context, token string, upd ProfileUpdate) (*User, error)

	// Tutorials lists tutorials, optionally narrowed server-side.
	Tutorials(ctx context.Context, token string, q TutorialQuery) ([]Tutorial, error)
	// MyTutorials lists tutorials created by the authenticated user.
	MyTutorials(ctx context.Context, token string) ([]Tutorial, error)
	// Tutorial fetches a single tutorial by id.
	Tutorial(ctx context.Context, token, id string) (*Tutorial, error)
	CreateTutorial(ctx context.Context, token string, in TutorialInput) (*Tutorial, error)
	UpdateTutorial(ctx context.Context, token, id string, upd TutorialUpdate) (*Tutorial, error)
	DeleteTutorial(ctx context.Context, token, id string) error

	AddBookmark(ctx context.Context, token, tutorialID string) error
	// Bookmarks returns the bookmarked tutorials themselves, not join rows.
	Bookmarks(ctx context.Context, token string) ([]Tutorial, error)
	RemoveBookmark(ctx context.Context, token, tutorialID string) error
	IsBookmarked(ctx context.Context, token, tutorialID string) (bool, error)
}

// New creates a Client talking to the Findhub backend at baseURL.
func New(baseURL string, opts ...Option) Client {
	return newHTTP(baseURL, opts...)
}
