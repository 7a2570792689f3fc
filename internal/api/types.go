// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

// User is the account record as returned by the backend. The bearer token
// authenticating requests for this user travels separately and is opaque.
type User struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Interests  []string `json:"interests"`
	SkillLevel string   `json:"skill_level"`
	Onboarded  bool     `json:"onboarded"`
	CreatedAt  string   `json:"created_at"`
}

// Clone returns a deep copy so read-only snapshots cannot alias the
// controller's live record.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Interests = append([]string(nil), u.Interests...)
	return &cp
}

// Credentials is the result of a successful login or registration.
type Credentials struct {
	Token string
	User  User
}

// ProfileUpdate carries the optional fields of a profile update.
// Nil fields are omitted from the request and left unchanged server-side.
type ProfileUpdate struct {
	Name       *string   `json:"name,omitempty"`
	Role       *string   `json:"role,omitempty"`
	Interests  *[]string `json:"interests,omitempty"`
	SkillLevel *string   `json:"skill_level,omitempty"`
	Onboarded  *bool     `json:"onboarded,omitempty"`
}

// Tutorial is a published tutorial entry.
type Tutorial struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	YouTubeURL   string `json:"youtube_url"`
	Category     string `json:"category"`
	PreviewImage string `json:"preview_image,omitempty"`
	CreatorID    string `json:"creator_id"`
	CreatorName  string `json:"creator_name"`
	CreatedAt    string `json:"created_at"`
}

// TutorialInput is the payload for creating a tutorial.
type TutorialInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	YouTubeURL   string `json:"youtube_url"`
	Category     string `json:"category"`
	PreviewImage string `json:"preview_image,omitempty"`
}

// TutorialUpdate carries the optional fields of a tutorial update.
type TutorialUpdate struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	YouTubeURL   *string `json:"youtube_url,omitempty"`
	Category     *string `json:"category,omitempty"`
	PreviewImage *string `json:"preview_image,omitempty"`
}

// TutorialQuery narrows the tutorial listing server-side.
type TutorialQuery struct {
	Category string
	Search   string
}
