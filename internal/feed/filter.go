// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package feed narrows an already-fetched tutorial list client-side.
// The backend does its own filtering; this is the interactive second pass a
// user reaches for after the list is on screen.
package feed

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
)

// Filter returns the tutorials matching the given category (exact,
// case-insensitive) and search query (fuzzy over title, description, and
// creator name). Empty arguments match everything; order is preserved.
func Filter(tutorials []api.Tutorial, category, query string) []api.Tutorial {
	out := make([]api.Tutorial, 0, len(tutorials))
	for _, t := range tutorials {
		if category != "" && !strings.EqualFold(t.Category, category) {
			continue
		}
		if query != "" && !matches(t, query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matches(t api.Tutorial, query string) bool {
	return fuzzy.MatchNormalizedFold(query, t.Title) ||
		fuzzy.MatchNormalizedFold(query, t.Description) ||
		fuzzy.MatchNormalizedFold(query, t.CreatorName)
}

// Categories returns the distinct categories present in the list, in first
// appearance order. Used to offer filter choices without a server round-trip.
func Categories(tutorials []api.Tutorial) []string {
	seen := make(map[string]struct{}, len(tutorials))
	var out []string
	for _, t := range tutorials {
		key := strings.ToLower(t.Category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}
