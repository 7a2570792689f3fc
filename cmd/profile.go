// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
)

// profileCmd shows and edits the signed-in user's profile. Changes go
// through the session controller so the stored user record stays in sync
// with the backend.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, sess, err := requireSession()
		if err != nil {
			return err
		}
		u := sess.User
		pterm.DefaultSection.Println(u.Name)
		pterm.Printfln("email:       %s", u.Email)
		pterm.Printfln("role:        %s", u.Role)
		pterm.Printfln("skill level: %s", u.SkillLevel)
		pterm.Printfln("interests:   %s", strings.Join(u.Interests, ", "))
		pterm.Printfln("onboarded:   %v", u.Onboarded)
		return nil
	},
}

var (
	profileName      string
	profileRole      string
	profileSkill     string
	profileInterests []string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long: `Update one or more profile fields. Only the flags you pass change;
everything else keeps its current value. Completing onboarding cannot be
undone here or anywhere else.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, _, _, err := requireSession()
		if err != nil {
			return err
		}

		var upd api.ProfileUpdate
		if cmd.Flags().Changed("name") {
			upd.Name = &profileName
		}
		if cmd.Flags().Changed("role") {
			upd.Role = &profileRole
		}
		if cmd.Flags().Changed("skill-level") {
			upd.SkillLevel = &profileSkill
		}
		if cmd.Flags().Changed("interests") {
			interests := append([]string(nil), profileInterests...)
			upd.Interests = &interests
		}
		if upd == (api.ProfileUpdate{}) {
			return fmt.Errorf("nothing to update; pass at least one of --name, --role, --skill-level, --interests")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		user, err := ctl.UpdateProfile(ctx, upd)
		if err != nil {
			return fmt.Errorf("%s", api.Detail(err, "failed to update profile"))
		}
		pterm.Success.Printfln("Profile updated, %s.", user.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileUpdateCmd)

	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&profileRole, "role", "", "Account role: student or creator")
	profileUpdateCmd.Flags().StringVar(&profileSkill, "skill-level", "", "Skill level: beginner, intermediate, or advanced")
	profileUpdateCmd.Flags().StringSliceVar(&profileInterests, "interests", nil, "Comma-separated interest categories")
}
