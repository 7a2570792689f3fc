// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sahilkhan-creator/Learnstream/internal/config"
)

func TestMergeConfig(t *testing.T) {
	base := config.Config{APIBaseURL: config.DefaultBaseURL, LogLevel: "info"}

	out := mergeConfig(base, "http://localhost:8000", "")
	assert.Equal(t, "http://localhost:8000", out.APIBaseURL)
	assert.Equal(t, "info", out.LogLevel)

	out = mergeConfig(base, "", "debug")
	assert.Equal(t, config.DefaultBaseURL, out.APIBaseURL)
	assert.Equal(t, "debug", out.LogLevel)

	out = mergeConfig(base, "", "")
	assert.Equal(t, base, out)
}
