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
	"github.com/Sahilkhan-creator/Learnstream/internal/feed"
	"github.com/Sahilkhan-creator/Learnstream/internal/httperrors"
)

var (
	feedCategory string
	feedSearch   string
	feedPick     bool
)

// feedCmd lists the tutorial feed. The category filter is applied
// server-side; the search term narrows the fetched list locally with fuzzy
// matching, mirroring the web app's search box over the loaded feed.
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse the tutorial feed",
	Long: `The feed command lists published tutorials, newest first. Narrow the list
with --category (exact match) and --search (fuzzy match over title,
description, and creator name), or use --pick to choose a category from the
ones present in the feed. Open a listed tutorial with 'findhub tutorial show'.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, err := requireSession()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		query := api.TutorialQuery{Category: feedCategory}
		if feedPick {
			// fetch everything so the picker can offer every category
			query = api.TutorialQuery{}
		}

		spinner, _ := pterm.DefaultSpinner.Start("Loading feed")
		tutorials, err := client.Tutorials(ctx, sess.Token, query)
		if err != nil {
			spinner.Fail("Could not load the feed")
			if errors.Is(err, &api.Error{Kind: api.KindTransport}) {
				return httperrors.FormatNetworkError(err, "loading the feed")
			}
			return fmt.Errorf("%s", api.Detail(err, "failed to load tutorials"))
		}
		spinner.Stop()

		localCategory := ""
		if feedPick {
			cats := feed.Categories(tutorials)
			if len(cats) == 0 {
				pterm.Info.Println("The feed is empty; nothing to pick from.")
				return nil
			}
			if localCategory, err = pterm.DefaultInteractiveSelect.
				WithOptions(cats).
				Show("Filter by category"); err != nil {
				return err
			}
		}
		tutorials = feed.Filter(tutorials, localCategory, feedSearch)
		if len(tutorials) == 0 {
			pterm.Info.Println("No tutorials match. Try a broader search or another category.")
			return nil
		}
		renderTutorials(tutorials)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().StringVarP(&feedCategory, "category", "c", "", "Only show tutorials in this category")
	feedCmd.Flags().StringVarP(&feedSearch, "search", "s", "", "Fuzzy-filter the fetched feed")
	feedCmd.Flags().BoolVarP(&feedPick, "pick", "p", false, "Pick a category interactively instead of --category")
}

// tutorialTable lays out a tutorial list. Ids are printed in full because
// the bookmark and tutorial subcommands take them as arguments.
func tutorialTable(tutorials []api.Tutorial) pterm.TableData {
	data := pterm.TableData{{"ID", "Title", "Category", "Creator"}}
	for _, t := range tutorials {
		data = append(data, []string{t.ID, t.Title, t.Category, t.CreatorName})
	}
	return data
}

// renderTutorials prints a tutorial list as a table.
func renderTutorials(tutorials []api.Tutorial) {
	_ = pterm.DefaultTable.WithHasHeader().WithData(tutorialTable(tutorials)).Render()
}
