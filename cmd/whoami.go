// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
	"github.com/Sahilkhan-creator/Learnstream/internal/logging"
)

// whoamiCmd shows the account behind the stored session. It asks the
// backend for the freshest record; when the backend is unreachable the
// locally stored snapshot is shown instead, since a hydrated session is
// trusted until proven stale.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show the current authenticated account",

	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, err := requireSession()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		user, err := client.Me(ctx, sess.Token)
		switch {
		case err == nil:
			// freshest record wins
		case errors.Is(err, api.ErrUnauthorized):
			// the unauthorized hook already dropped the session
			return err
		default:
			// unreachable backend; the hydrated snapshot is still trusted
			logging.Logger().Debug().Msg(logging.PresentError("refreshing account", err))
			user = sess.User
		}

		pterm.Printfln("👤 %s <%s>", user.Name, user.Email)
		pterm.Printfln("   role: %s, skill level: %s, onboarded: %v", user.Role, user.SkillLevel, user.Onboarded)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
