// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides diagnostic logging and secret masking for the
// Findhub CLI. Anything that may carry a bearer token or a password goes
// through Mask before it reaches a log line or an error shown to the user.
package logging

import "regexp"

var (
	rePassword = regexp.MustCompile(`(?i)("password"\s*:\s*"|password=)([^\s";]+)`)
	reBearer   = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._-]+)`)
	reToken    = regexp.MustCompile(`(?i)(token=|"access_token"\s*:\s*")([A-Za-z0-9._-]+)`)
	reAPIKey   = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;]+)`)
)

// Mask replaces credential values in the input string with "***".
// It covers Authorization headers, token/password pairs in query-style
// strings, and the JSON shapes the Findhub API uses.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	return out
}
