// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
	"github.com/Sahilkhan-creator/Learnstream/internal/httperrors"
	"github.com/Sahilkhan-creator/Learnstream/internal/session"
)

var loginEmail string

// loginCmd signs the user in with email/password credentials. On success the
// issued token and user record are stored in the OS keychain, so subsequent
// commands run authenticated until logout or expiry.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in to Findhub",
	Long: `The login command authenticates against the Findhub backend with your
email and password. The issued session is stored securely in the OS keychain;
nothing is written in plain text.

Users who have not completed the first-run profile setup are pointed at
'findhub onboard' after signing in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, _, err := buildController()
		if err != nil {
			return err
		}
		if sess := ctl.Hydrate(); sess.Status == session.StatusAuthenticated {
			pterm.Info.Printfln("Already logged in as %s. Run 'findhub logout' to switch accounts.", sess.User.Email)
			return nil
		}

		email := loginEmail
		if email == "" {
			if email, err = promptLine("Email"); err != nil {
				return err
			}
		}
		password, err := promptPassword("Password")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		spinner, _ := pterm.DefaultSpinner.Start("Signing in")
		user, err := ctl.Login(ctx, email, password)
		if err != nil {
			spinner.Fail("Sign-in failed")
			if errors.Is(err, &api.Error{Kind: api.KindTransport}) {
				return httperrors.FormatNetworkError(err, "signing in")
			}
			return fmt.Errorf("%s", api.Detail(err, "login failed"))
		}
		spinner.Success(fmt.Sprintf("Welcome back, %s!", user.Name))

		if !user.Onboarded {
			pterm.Info.Println("Let's personalize your experience: run 'findhub onboard'.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email (prompted when omitted)")
}
