// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns technical network failures into messages a
// Findhub user can act on. Request rejections with a server detail are
// presented as-is elsewhere; this package only handles the "nothing useful
// came back" class.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// FormatNetworkError prints a friendly explanation of a transport failure
// and returns a wrapped error for the command runner. context describes the
// action that failed, e.g. "signing in".
func FormatNetworkError(err error, context string) error {
	if err == nil {
		return nil
	}

	switch {
	case isTimeout(err):
		pterm.Printf("⏱️  Connection timeout while %s\n", context)
		pterm.Println("The Findhub server took too long to respond. Please try again in a few moments.")
	case isDNS(err):
		pterm.Printf("🌐 Cannot resolve the Findhub server address while %s\n", context)
		pterm.Println("Check your internet connection and DNS settings.")
	case isConnectionRefused(err):
		pterm.Printf("🚫 Connection refused while %s\n", context)
		pterm.Println("The Findhub service is not accepting connections right now. Please try again later.")
	case isTLS(err):
		pterm.Printf("🔒 Secure connection failed while %s\n", context)
		pterm.Println("Check your system clock and any network proxy interfering with HTTPS.")
	default:
		pterm.Printf("❌ Cannot reach the Findhub service while %s\n", context)
		pterm.Println("Check your internet connection and firewall settings.")
	}

	return fmt.Errorf("network error: %w", err)
}

// isTimeout checks both net.Error timeouts and context deadline wording.
func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "timeout") || strings.Contains(s, "deadline exceeded")
}

func isDNS(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefused(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isTLS(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "tls") || strings.Contains(s, "certificate") || strings.Contains(s, "handshake")
}
