// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package onboarding implements the first-run profile setup wizard as a
// small state machine, kept free of terminal concerns so the step logic is
// testable. The cmd layer renders each step and feeds choices back in.
package onboarding

import (
	"errors"
	"fmt"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
)

// Step identifies the wizard's current screen.
type Step int

const (
	StepInterests Step = iota
	StepRole
	StepSkillLevel
	StepDone
)

// Choice is one selectable option of a wizard step.
type Choice struct {
	ID    string
	Label string
}

// Interests are the category choices offered during onboarding.
var Interests = []Choice{
	{ID: "tech", Label: "Technology"},
	{ID: "education", Label: "Education"},
	{ID: "creative", Label: "Creative Arts"},
	{ID: "science", Label: "Science"},
	{ID: "business", Label: "Business"},
	{ID: "health", Label: "Health & Wellness"},
}

// Roles are the account role choices.
var Roles = []Choice{
	{ID: "student", Label: "Student"},
	{ID: "creator", Label: "Creator"},
}

// SkillLevels are the self-assessed experience choices.
var SkillLevels = []Choice{
	{ID: "beginner", Label: "Beginner"},
	{ID: "intermediate", Label: "Intermediate"},
	{ID: "advanced", Label: "Advanced"},
}

// ErrNoInterests blocks advancing past the interests step with an empty
// selection.
var ErrNoInterests = errors.New("select at least one interest")

// Wizard walks a new user through interests, role, and skill level.
// It starts at StepInterests with the same defaults the backend assigns to
// fresh accounts.
type Wizard struct {
	step      Step
	interests []string
	role      string
	skill     string
}

func NewWizard() *Wizard {
	return &Wizard{step: StepInterests, role: "student", skill: "beginner"}
}

// Step returns the wizard's current step.
func (w *Wizard) Step() Step { return w.step }

// Interests returns the currently selected interest ids.
func (w *Wizard) Interests() []string {
	return append([]string(nil), w.interests...)
}

// SetInterests replaces the interest selection; unknown ids are rejected.
func (w *Wizard) SetInterests(ids []string) error {
	for _, id := range ids {
		if !known(Interests, id) {
			return fmt.Errorf("unknown interest %q", id)
		}
	}
	w.interests = append([]string(nil), ids...)
	return nil
}

// ToggleInterest adds or removes a single interest.
func (w *Wizard) ToggleInterest(id string) error {
	if !known(Interests, id) {
		return fmt.Errorf("unknown interest %q", id)
	}
	for i, cur := range w.interests {
		if cur == id {
			w.interests = append(w.interests[:i], w.interests[i+1:]...)
			return nil
		}
	}
	w.interests = append(w.interests, id)
	return nil
}

// SetRole selects the account role.
func (w *Wizard) SetRole(id string) error {
	if !known(Roles, id) {
		return fmt.Errorf("unknown role %q", id)
	}
	w.role = id
	return nil
}

// SetSkillLevel selects the self-assessed skill level.
func (w *Wizard) SetSkillLevel(id string) error {
	if !known(SkillLevels, id) {
		return fmt.Errorf("unknown skill level %q", id)
	}
	w.skill = id
	return nil
}

// Next advances to the following step. Leaving the interests step requires
// a non-empty selection.
func (w *Wizard) Next() error {
	switch w.step {
	case StepInterests:
		if len(w.interests) == 0 {
			return ErrNoInterests
		}
		w.step = StepRole
	case StepRole:
		w.step = StepSkillLevel
	case StepSkillLevel:
		w.step = StepDone
	}
	return nil
}

// Back returns to the previous step; a no-op on the first step.
func (w *Wizard) Back() {
	if w.step > StepInterests && w.step < StepDone {
		w.step--
	}
}

// Update builds the profile update committing the wizard's choices,
// including the one-way onboarded flag.
func (w *Wizard) Update() api.ProfileUpdate {
	interests := append([]string(nil), w.interests...)
	role := w.role
	skill := w.skill
	onboarded := true
	return api.ProfileUpdate{
		Interests:  &interests,
		Role:       &role,
		SkillLevel: &skill,
		Onboarded:  &onboarded,
	}
}

func known(choices []Choice, id string) bool {
	for _, c := range choices {
		if c.ID == id {
			return true
		}
	}
	return false
}
