// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
)

var sample = []api.Tutorial{
	{ID: "t-1", Title: "Docker for Beginners", Description: "Containers from scratch", Category: "Technology", CreatorName: "Ada"},
	{ID: "t-2", Title: "Watercolor Basics", Description: "Painting fundamentals", Category: "Creative Arts", CreatorName: "Grace"},
	{ID: "t-3", Title: "Kubernetes Deep Dive", Description: "Orchestration at scale", Category: "Technology", CreatorName: "Linus"},
}

func ids(ts []api.Tutorial) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestFilterEmptyArgumentsMatchEverything(t *testing.T) {
	assert.Equal(t, []string{"t-1", "t-2", "t-3"}, ids(Filter(sample, "", "")))
}

func TestFilterByCategoryCaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"t-1", "t-3"}, ids(Filter(sample, "technology", "")))
}

func TestFilterBySearchOverTitle(t *testing.T) {
	assert.Equal(t, []string{"t-1"}, ids(Filter(sample, "", "docker")))
}

func TestFilterBySearchOverDescription(t *testing.T) {
	assert.Equal(t, []string{"t-3"}, ids(Filter(sample, "", "orchestration")))
}

func TestFilterBySearchOverCreator(t *testing.T) {
	assert.Equal(t, []string{"t-2"}, ids(Filter(sample, "", "grace")))
}

func TestFilterCombinesCategoryAndSearch(t *testing.T) {
	assert.Equal(t, []string{"t-3"}, ids(Filter(sample, "Technology", "kubernetes")))
	assert.Empty(t, Filter(sample, "Creative Arts", "kubernetes"))
}

func TestFilterNoMatch(t *testing.T) {
	assert.Empty(t, Filter(sample, "", "quantum chromodynamics"))
}

func TestCategoriesDistinctFirstAppearance(t *testing.T) {
	withDup := append(sample, api.Tutorial{ID: "t-4", Category: "technology"})
	assert.Equal(t, []string{"Technology", "Creative Arts"}, Categories(withDup))
}

func TestCategoriesEmpty(t *testing.T) {
	assert.Empty(t, Categories(nil))
}
