// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
)

// bookmarkCmd is the library: the tutorials you saved for later.
var bookmarkCmd = &cobra.Command{
	Use:     "bookmark",
	Aliases: []string{"bookmarks", "library"},
	Short:   "Manage your bookmarked tutorials",
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your bookmarked tutorials",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, err := requireSession()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		tutorials, err := client.Bookmarks(ctx, sess.Token)
		if err != nil {
			return fmt.Errorf("%s", api.Detail(err, "failed to load bookmarks"))
		}
		if len(tutorials) == 0 {
			pterm.Info.Println("Your library is empty. Bookmark tutorials from the feed with 'findhub bookmark add'.")
			return nil
		}
		renderTutorials(tutorials)
		return nil
	},
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add <tutorial-id>",
	Short: "Bookmark a tutorial",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, err := requireSession()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := client.AddBookmark(ctx, sess.Token, args[0]); err != nil {
			return fmt.Errorf("%s", api.Detail(err, "failed to add bookmark"))
		}
		pterm.Success.Println("Added to your library.")
		return nil
	},
}

var bookmarkRemoveCmd = &cobra.Command{
	Use:   "remove <tutorial-id>",
	Short: "Remove a tutorial from your library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, err := requireSession()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := client.RemoveBookmark(ctx, sess.Token, args[0]); err != nil {
			return fmt.Errorf("%s", api.Detail(err, "failed to remove bookmark"))
		}
		pterm.Success.Println("Removed from your library.")
		return nil
	},
}

var bookmarkCheckCmd = &cobra.Command{
	Use:   "check <tutorial-id>",
	Short: "Check whether a tutorial is in your library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, err := requireSession()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		bookmarked, err := client.IsBookmarked(ctx, sess.Token, args[0])
		if err != nil {
			return fmt.Errorf("%s", api.Detail(err, "failed to check bookmark"))
		}
		if bookmarked {
			pterm.Println("🔖 In your library")
		} else {
			pterm.Println("Not bookmarked")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bookmarkCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd, bookmarkAddCmd, bookmarkRemoveCmd, bookmarkCheckCmd)
}
