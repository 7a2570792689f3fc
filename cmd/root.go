// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface of the Findhub client.
// Every screen of the Findhub web app maps to a subcommand here: the feed,
// the creator dashboard, the bookmarks library, the profile editor, and the
// authentication flows. Commands that need a signed-in user are gated by the
// route guard before they run.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showVersion bool

// rootCmd is the entry point when findhub is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "findhub",
	Short:         "Findhub CLI for discovering and sharing video tutorials",
	Long:          `Findhub is a command-line client for the Findhub tutorial platform. Browse the feed, manage your own tutorials, and keep a library of bookmarks, all from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("findhub %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
