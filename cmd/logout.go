// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd drops the local session. It is purely local: the stored token
// and user record are removed from the keychain and no request is made, so
// logging out works even when the token is already invalid or the network
// is down.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the stored session",
	Long: `The logout command removes the stored session token and user record from
the OS keychain. It never contacts the backend and succeeds even when you are
not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, _, err := buildController()
		if err != nil {
			return err
		}
		ctl.Hydrate()
		ctl.Logout()
		pterm.Success.Println("Signed out. Your stored session has been removed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
