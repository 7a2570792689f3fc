// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
)

func TestTutorialTableShowsFullIDs(t *testing.T) {
	id := "66c5cbd8-4e41-43a9-a582-6b0d8466f2d2"
	data := tutorialTable([]api.Tutorial{
		{ID: id, Title: "Docker 101", Category: "Technology", CreatorName: "Ada"},
	})

	require.Len(t, data, 2)
	assert.Equal(t, []string{"ID", "Title", "Category", "Creator"}, data[0])
	// the full id must appear so bookmark/tutorial commands can consume it
	assert.Equal(t, []string{id, "Docker 101", "Technology", "Ada"}, data[1])
}

func TestTutorialFieldsEndWithWatchLink(t *testing.T) {
	tut := &api.Tutorial{
		ID:          "t-1",
		Title:       "Docker 101",
		Description: "Containers from scratch",
		YouTubeURL:  "https://youtube.com/watch?v=abc123",
		Category:    "Technology",
		CreatorName: "Ada",
	}

	fields := tutorialFields(tut)
	last := fields[len(fields)-1]
	assert.Equal(t, "watch", last[0])
	assert.Equal(t, "https://youtube.com/watch?v=abc123", last[1])
}

func TestTutorialFieldsOmitEmptyPreview(t *testing.T) {
	without := tutorialFields(&api.Tutorial{YouTubeURL: "https://youtube.com/watch?v=abc"})
	for _, f := range without {
		assert.NotEqual(t, "preview", f[0])
	}

	with := tutorialFields(&api.Tutorial{
		YouTubeURL:   "https://youtube.com/watch?v=abc",
		PreviewImage: "https://img.example/p.png",
	})
	found := false
	for _, f := range with {
		if f[0] == "preview" {
			found = true
			assert.Equal(t, "https://img.example/p.png", f[1])
		}
	}
	assert.True(t, found)
}
