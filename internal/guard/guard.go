// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package guard gates commands that require an authenticated session.
// The decision is stateless and re-derived on every dispatch from the
// controller's current snapshot; the guard itself remembers nothing.
package guard

import (
	"errors"

	"github.com/Sahilkhan-creator/Learnstream/internal/session"
)

// Decision is the guard's admission ruling for one dispatch.
type Decision int

const (
	// DecisionWait means hydration has not resolved; no ruling yet.
	DecisionWait Decision = iota
	// DecisionAdmit means the command may run.
	DecisionAdmit
	// DecisionDeny means the user must log in first.
	DecisionDeny
)

// ErrLoginRequired aborts a protected command for anonymous users.
var ErrLoginRequired = errors.New("you are not logged in; run 'findhub login' to get started")

// Decide maps a session status to an admission decision:
// Authenticated admits, Anonymous denies, anything earlier waits.
func Decide(st session.Status) Decision {
	switch st {
	case session.StatusAuthenticated:
		return DecisionAdmit
	case session.StatusAnonymous:
		return DecisionDeny
	default:
		return DecisionWait
	}
}

// Require hydrates the controller if that has not happened yet and either
// admits the invocation, returning the session snapshot commands act on, or
// rejects it with ErrLoginRequired. Hydration always resolves, so Require
// never reports Wait to its caller.
func Require(ctl *session.Controller) (session.Session, error) {
	sess := ctl.Current()
	if Decide(sess.Status) == DecisionWait {
		sess = ctl.Hydrate()
	}
	if Decide(sess.Status) != DecisionAdmit {
		return session.Session{Status: sess.Status}, ErrLoginRequired
	}
	return sess, nil
}
