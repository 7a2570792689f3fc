// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
	"github.com/Sahilkhan-creator/Learnstream/internal/config"
	"github.com/Sahilkhan-creator/Learnstream/internal/guard"
	"github.com/Sahilkhan-creator/Learnstream/internal/keychain"
	"github.com/Sahilkhan-creator/Learnstream/internal/logging"
	"github.com/Sahilkhan-creator/Learnstream/internal/session"
)

// buildController wires config, the API client, the credential store, and
// the session controller. The unauthorized hook closes the loop on token
// expiry: the first authenticated call that comes back 401 drops the local
// session, so the next command lands on the login prompt instead of failing
// the same way again.
func buildController() (*session.Controller, api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logging.Setup(cfg.LogLevel)

	ring, err := keychain.Open()
	if err != nil {
		return nil, nil, err
	}
	store := session.NewStore(ring)

	var ctl *session.Controller
	client := api.New(cfg.APIBaseURL, api.WithUnauthorizedHook(func() {
		if ctl != nil {
			ctl.Expire()
			pterm.Warning.Println("Your session has expired. Run 'findhub login' to sign in again.")
		}
	}))
	ctl = session.NewController(client, store)

	logging.Logger().Debug().Str("base_url", cfg.APIBaseURL).Msg("api client ready")
	return ctl, client, nil
}

// requireSession is the admission check every protected command passes
// through: hydrate once, then admit or reject per the route guard.
func requireSession() (*session.Controller, api.Client, session.Session, error) {
	ctl, client, err := buildController()
	if err != nil {
		return nil, nil, session.Session{}, err
	}
	sess, err := guard.Require(ctl)
	if err != nil {
		return nil, nil, session.Session{}, err
	}
	return ctl, client, sess, nil
}
