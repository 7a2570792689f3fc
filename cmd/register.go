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

var (
	registerName  string
	registerEmail string
)

// registerCmd creates a new Findhub account and signs it in. New accounts
// start as un-onboarded students; the onboarding wizard fills in the rest.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Findhub account",
	Long: `The register command creates a new account on the Findhub backend and
signs you in immediately. Email addresses must be unique; the backend rejects
duplicates.

After registration, run 'findhub onboard' to pick your interests, role, and
skill level.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, _, err := buildController()
		if err != nil {
			return err
		}
		if sess := ctl.Hydrate(); sess.Status == session.StatusAuthenticated {
			pterm.Info.Printfln("Already logged in as %s. Run 'findhub logout' first to create a new account.", sess.User.Email)
			return nil
		}

		name := registerName
		if name == "" {
			if name, err = promptLine("Name"); err != nil {
				return err
			}
		}
		email := registerEmail
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

		spinner, _ := pterm.DefaultSpinner.Start("Creating your account")
		user, err := ctl.Register(ctx, name, email, password)
		if err != nil {
			spinner.Fail("Registration failed")
			if errors.Is(err, &api.Error{Kind: api.KindTransport}) {
				return httperrors.FormatNetworkError(err, "creating your account")
			}
			return fmt.Errorf("%s", api.Detail(err, "registration failed"))
		}
		spinner.Success(fmt.Sprintf("Welcome aboard, %s!", user.Name))
		pterm.Info.Println("Next, personalize your feed: run 'findhub onboard'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Display name (prompted when omitted)")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Account email (prompted when omitted)")
}
