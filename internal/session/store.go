// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"encoding/json"

	"github.com/99designs/keyring"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
)

// Keys used for the persisted session in the credential store.
const (
	keyToken = "session_token"
	keyUser  = "session_user"
)

// Store persists the session across process restarts. It is a pure
// durability layer: no network access, no token validation. Token and user
// are written under separate keys but behave as one unit — Load reports a
// session only when both halves are present and intact.
type Store struct {
	ring keyring.Keyring
}

// NewStore wraps an open credential ring.
func NewStore(ring keyring.Keyring) *Store {
	return &Store{ring: ring}
}

// Save persists token and user together, overwriting any prior session.
// The user record is written first; if the token write fails the user item
// is removed again so a partial session is never observable.
func (s *Store) Save(token string, u *api.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.ring.Set(keyring.Item{Key: keyUser, Data: b}); err != nil {
		return err
	}
	if err := s.ring.Set(keyring.Item{Key: keyToken, Data: []byte(token)}); err != nil {
		_ = s.ring.Remove(keyUser)
		return err
	}
	return nil
}

// Load reads back the persisted session. It reports ok=false when nothing is
// persisted, when only one half survived, or when the user record does not
// deserialize — corrupted state is treated as no-session, never an error.
func (s *Store) Load() (token string, u *api.User, ok bool) {
	tok, err := s.ring.Get(keyToken)
	if err != nil || len(tok.Data) == 0 {
		s.Clear()
		return "", nil, false
	}
	usr, err := s.ring.Get(keyUser)
	if err != nil || len(usr.Data) == 0 {
		s.Clear()
		return "", nil, false
	}
	var user api.User
	if err := json.Unmarshal(usr.Data, &user); err != nil || user.ID == "" {
		s.Clear()
		return "", nil, false
	}
	return string(tok.Data), &user, true
}

// Clear removes the persisted session. Clearing an empty store is a no-op.
func (s *Store) Clear() {
	_ = s.ring.Remove(keyToken)
	_ = s.ring.Remove(keyUser)
}
