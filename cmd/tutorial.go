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

// tutorialCmd opens single tutorials and serves as the creator dashboard.
// Anyone signed in may show any tutorial; ownership of update and delete is
// enforced by the backend, which rejects other users' tutorials with 403.
var tutorialCmd = &cobra.Command{
	Use:     "tutorial",
	Aliases: []string{"tutorials"},
	Short:   "View, create, and manage tutorials",
}

var (
	tutorialTitle       string
	tutorialDescription string
	tutorialURL         string
	tutorialCategory    string
	tutorialImage       string
)

var tutorialShowCmd = &cobra.Command{
	Use:   "show <tutorial-id>",
	Short: "Show a tutorial, including its watch link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, err := requireSession()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		tut, err := client.Tutorial(ctx, sess.Token, args[0])
		if err != nil {
			return fmt.Errorf("%s", api.Detail(err, "failed to load tutorial"))
		}

		pterm.DefaultSection.Println(tut.Title)
		for _, f := range tutorialFields(tut) {
			pterm.Printfln("%-12s %s", f[0]+":", f[1])
		}
		return nil
	},
}

// tutorialFields lays out the detail view. The watch link is the row the
// feed exists to hand out, so it always comes last where the eye lands.
func tutorialFields(t *api.Tutorial) [][2]string {
	fields := [][2]string{
		{"id", t.ID},
		{"category", t.Category},
		{"creator", t.CreatorName},
		{"published", t.CreatedAt},
		{"description", t.Description},
	}
	if t.PreviewImage != "" {
		fields = append(fields, [2]string{"preview", t.PreviewImage})
	}
	return append(fields, [2]string{"watch", t.YouTubeURL})
}

var tutorialMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List tutorials you created",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, err := requireSession()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		tutorials, err := client.MyTutorials(ctx, sess.Token)
		if err != nil {
			return fmt.Errorf("%s", api.Detail(err, "failed to load your tutorials"))
		}
		if len(tutorials) == 0 {
			pterm.Info.Println("You have not published any tutorials yet. Run 'findhub tutorial create'.")
			return nil
		}
		renderTutorials(tutorials)
		return nil
	},
}

var tutorialCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new tutorial",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, err := requireSession()
		if err != nil {
			return err
		}

		in := api.TutorialInput{
			Title:        tutorialTitle,
			Description:  tutorialDescription,
			YouTubeURL:   tutorialURL,
			Category:     tutorialCategory,
			PreviewImage: tutorialImage,
		}
		// prompt for whatever the flags left empty
		if in.Title == "" {
			if in.Title, err = promptLine("Title"); err != nil {
				return err
			}
		}
		if in.Description == "" {
			if in.Description, err = promptLine("Description"); err != nil {
				return err
			}
		}
		if in.YouTubeURL == "" {
			if in.YouTubeURL, err = promptLine("YouTube URL"); err != nil {
				return err
			}
		}
		if in.Category == "" {
			if in.Category, err = promptLine("Category"); err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		created, err := client.CreateTutorial(ctx, sess.Token, in)
		if err != nil {
			return fmt.Errorf("%s", api.Detail(err, "failed to create tutorial"))
		}
		pterm.Success.Printfln("Published %q (%s)", created.Title, created.ID)
		return nil
	},
}

var tutorialUpdateCmd = &cobra.Command{
	Use:   "update <tutorial-id>",
	Short: "Update one of your tutorials",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, err := requireSession()
		if err != nil {
			return err
		}

		var upd api.TutorialUpdate
		if cmd.Flags().Changed("title") {
			upd.Title = &tutorialTitle
		}
		if cmd.Flags().Changed("description") {
			upd.Description = &tutorialDescription
		}
		if cmd.Flags().Changed("url") {
			upd.YouTubeURL = &tutorialURL
		}
		if cmd.Flags().Changed("category") {
			upd.Category = &tutorialCategory
		}
		if cmd.Flags().Changed("image") {
			upd.PreviewImage = &tutorialImage
		}
		if upd == (api.TutorialUpdate{}) {
			return fmt.Errorf("nothing to update; pass at least one of --title, --description, --url, --category, --image")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		updated, err := client.UpdateTutorial(ctx, sess.Token, args[0], upd)
		if err != nil {
			return fmt.Errorf("%s", api.Detail(err, "failed to update tutorial"))
		}
		pterm.Success.Printfln("Updated %q", updated.Title)
		return nil
	},
}

var tutorialDeleteCmd = &cobra.Command{
	Use:   "delete <tutorial-id>",
	Short: "Delete one of your tutorials",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, err := requireSession()
		if err != nil {
			return err
		}

		ok, _ := pterm.DefaultInteractiveConfirm.Show("Delete this tutorial? Bookmarks pointing at it are removed too.")
		if !ok {
			pterm.Info.Println("Nothing deleted.")
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := client.DeleteTutorial(ctx, sess.Token, args[0]); err != nil {
			return fmt.Errorf("%s", api.Detail(err, "failed to delete tutorial"))
		}
		pterm.Success.Println("Tutorial deleted.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tutorialCmd)
	tutorialCmd.AddCommand(tutorialShowCmd, tutorialMineCmd, tutorialCreateCmd, tutorialUpdateCmd, tutorialDeleteCmd)

	for _, c := range []*cobra.Command{tutorialCreateCmd, tutorialUpdateCmd} {
		c.Flags().StringVar(&tutorialTitle, "title", "", "Tutorial title")
		c.Flags().StringVar(&tutorialDescription, "description", "", "What the tutorial covers")
		c.Flags().StringVar(&tutorialURL, "url", "", "YouTube URL of the video")
		c.Flags().StringVar(&tutorialCategory, "category", "", "Category, e.g. Tech or Science")
		c.Flags().StringVar(&tutorialImage, "image", "", "Preview image URL")
	}
}
