// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain opens the OS credential store that persists the Findhub
// session. Native backends (macOS Keychain, Windows Credential Manager,
// Secret Service, pass) are preferred; an encrypted file in the XDG state
// directory serves as the fallback so headless Linux hosts still work.
package keychain

import (
	"path/filepath"
	"sync"

	"github.com/99designs/keyring"

	"github.com/Sahilkhan-creator/Learnstream/internal/xdg"
)

// ServiceName identifies the Findhub namespace in the credential store.
const ServiceName = "findhub"

var (
	mu         sync.Mutex
	globalRing keyring.Keyring
)

// Open returns the process-wide credential ring, opening it on first use.
// Subsequent calls return the same ring; a failed open is retried.
func Open() (keyring.Keyring, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalRing != nil {
		return globalRing, nil
	}

	dir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		PassPrefix:               ServiceName,
		WinCredPrefix:            ServiceName,
		KeychainTrustApplication: true,
		FileDir:                  filepath.Join(dir, "keyring"),
		FilePasswordFunc:         keyring.FixedStringPrompt(ServiceName),
	})
	if err != nil {
		return nil, err
	}

	globalRing = ring
	return globalRing, nil
}
