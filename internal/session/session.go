// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the client-side authentication lifecycle for the
// Findhub CLI: the single process-wide session, its persistence across runs,
// and every authentication-affecting call to the backend. All other packages
// read the session through snapshots and never mutate it.
package session

import "github.com/Sahilkhan-creator/Learnstream/internal/api"

// Status describes where the session is in its lifecycle.
type Status int

const (
	// StatusUninitialized means hydration has not been attempted yet.
	StatusUninitialized Status = iota
	// StatusHydrating means persisted storage is being read; the outcome
	// is not known yet and no admission decision may be based on it.
	StatusHydrating
	// StatusAuthenticated means token and user are both present and
	// presumed valid until a call proves otherwise.
	StatusAuthenticated
	// StatusAnonymous means no valid session exists.
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusHydrating:
		return "hydrating"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Session is a read-only snapshot of the current authentication state.
// Token and User are either both set or both empty.
type Session struct {
	Status Status
	Token  string
	User   *api.User
}
