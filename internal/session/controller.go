// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
)

// ErrNotAuthenticated is returned by operations that require a live session.
var ErrNotAuthenticated = errors.New("not authenticated")

// Controller is the single source of truth for session state and the only
// component permitted to call authentication-affecting endpoints or write
// the credential store. Exactly one Controller exists per process.
type Controller struct {
	mu     sync.RWMutex
	api    api.Client
	store  *Store
	status Status
	token  string
	user   *api.User
}

// NewController creates a Controller in the Uninitialized state. Call
// Hydrate before consulting Current.
func NewController(client api.Client, store *Store) *Controller {
	return &Controller{api: client, store: store, status: StatusUninitialized}
}

// Hydrate restores the session persisted by a previous run. It runs at most
// once; later calls return the current snapshot. A persisted token is
// trusted without a server round-trip — staleness surfaces at point of use
// and is handled by Expire. Hydrate always resolves to Authenticated or
// Anonymous; it never fails outward.
func (c *Controller) Hydrate() Session {
	c.mu.Lock()
	if c.status == StatusUninitialized {
		c.status = StatusHydrating
		if token, user, ok := c.store.Load(); ok {
			c.token, c.user = token, user
			c.status = StatusAuthenticated
		} else {
			c.status = StatusAnonymous
		}
	}
	c.mu.Unlock()
	return c.Current()
}

// Current returns a snapshot of the live session. The returned user is a
// copy; mutating it does not affect the controller.
func (c *Controller) Current() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Session{Status: c.status, Token: c.token, User: c.user.Clone()}
}

// Login authenticates with email/password. On success the new session is
// persisted before it becomes observable; on any failure the existing state
// is left untouched. The user record is returned so the caller can route
// un-onboarded users to the setup wizard.
func (c *Controller) Login(ctx context.Context, email, password string) (*api.User, error) {
	creds, err := c.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := c.commit(creds.Token, &creds.User); err != nil {
		return nil, err
	}
	return creds.User.Clone(), nil
}

// Register creates a new account. Same commit contract as Login; the new
// user is implicitly un-onboarded.
func (c *Controller) Register(ctx context.Context, name, email, password string) (*api.User, error) {
	creds, err := c.api.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	if err := c.commit(creds.Token, &creds.User); err != nil {
		return nil, err
	}
	return creds.User.Clone(), nil
}

// UpdateProfile applies a partial profile update through the backend and, on
// success, replaces the in-memory user with the server's record and
// re-persists it. On failure nothing changes. Onboarding completion is
// one-way: once the user is onboarded the flag is stripped from outgoing
// updates so it can never flip back.
func (c *Controller) UpdateProfile(ctx context.Context, upd api.ProfileUpdate) (*api.User, error) {
	cur := c.Current()
	if cur.Status != StatusAuthenticated {
		return nil, ErrNotAuthenticated
	}
	if cur.User.Onboarded {
		upd.Onboarded = nil
	}
	user, err := c.api.UpdateProfile(ctx, cur.Token, upd)
	if err != nil {
		return nil, err
	}
	if err := c.commit(cur.Token, user); err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

// Logout drops the session: credential store cleared, state Anonymous.
// It makes no network calls, cannot fail, and is idempotent.
func (c *Controller) Logout() {
	c.store.Clear()
	c.mu.Lock()
	c.token, c.user = "", nil
	c.status = StatusAnonymous
	c.mu.Unlock()
}

// Expire handles a stale token reported by the API layer's unauthorized
// hook. Locally it is indistinguishable from Logout.
func (c *Controller) Expire() {
	c.Logout()
}

// commit persists the session first and only then swaps it in, so no reader
// ever observes an authenticated state that did not reach durable storage.
func (c *Controller) commit(token string, u *api.User) error {
	if err := c.store.Save(token, u); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	c.mu.Lock()
	c.token, c.user = token, u
	c.status = StatusAuthenticated
	c.mu.Unlock()
	return nil
}
