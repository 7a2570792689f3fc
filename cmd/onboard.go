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
	"github.com/Sahilkhan-creator/Learnstream/internal/onboarding"
)

// onboardCmd walks a freshly registered user through the profile setup
// wizard: interests, role, skill level. The wizard enforces its one rule
// itself (at least one interest before advancing); the command only renders
// steps and feeds the choices back in. Completing the wizard flips the
// one-way onboarded flag.
var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Personalize your Findhub experience",
	Long: `The onboard command runs the first-run profile setup: pick the topics you
care about, whether you are here to learn or to teach, and your experience
level. Your feed is tailored from these choices.

Onboarding is completed once; re-running it on an onboarded account is a
no-op. Use 'findhub profile update' to change your preferences later.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, _, sess, err := requireSession()
		if err != nil {
			return err
		}
		if sess.User.Onboarded {
			pterm.Info.Println("You are already set up. Use 'findhub profile update' to change your preferences.")
			return nil
		}

		w := onboarding.NewWizard()
		for w.Step() != onboarding.StepDone {
			switch w.Step() {
			case onboarding.StepInterests:
				labels := choiceLabels(onboarding.Interests)
				picked, err := pterm.DefaultInteractiveMultiselect.
					WithOptions(labels).
					Show("Which topics interest you?")
				if err != nil {
					return err
				}
				if err := w.SetInterests(choiceIDs(onboarding.Interests, picked)); err != nil {
					return err
				}
			case onboarding.StepRole:
				labels := choiceLabels(onboarding.Roles)
				picked, err := pterm.DefaultInteractiveSelect.
					WithOptions(labels).
					Show("Are you here to learn or to share?")
				if err != nil {
					return err
				}
				if err := w.SetRole(choiceID(onboarding.Roles, picked)); err != nil {
					return err
				}
			case onboarding.StepSkillLevel:
				labels := choiceLabels(onboarding.SkillLevels)
				picked, err := pterm.DefaultInteractiveSelect.
					WithOptions(labels).
					Show("How experienced are you?")
				if err != nil {
					return err
				}
				if err := w.SetSkillLevel(choiceID(onboarding.SkillLevels, picked)); err != nil {
					return err
				}
			}
			if err := w.Next(); err != nil {
				pterm.Error.Println(err)
				continue
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		spinner, _ := pterm.DefaultSpinner.Start("Saving your profile")
		if _, err := ctl.UpdateProfile(ctx, w.Update()); err != nil {
			spinner.Fail("Could not save your profile")
			return fmt.Errorf("%s", api.Detail(err, "failed to save profile"))
		}
		spinner.Success("Profile setup complete! Run 'findhub feed' to start exploring.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

func choiceLabels(choices []onboarding.Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Label
	}
	return out
}

func choiceID(choices []onboarding.Choice, label string) string {
	for _, c := range choices {
		if c.Label == label {
			return c.ID
		}
	}
	return ""
}

func choiceIDs(choices []onboarding.Choice, labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if id := choiceID(choices, l); id != "" {
			out = append(out, id)
		}
	}
	return out
}
