// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahilkhan-creator/Learnstream/internal/api"
)

func newTestRing() keyring.Keyring {
	return keyring.NewArrayKeyring(nil)
}

func testUser() *api.User {
	return &api.User{
		ID:         uuid.NewString(),
		Email:      "a@b.com",
		Name:       "Ada",
		Role:       "student",
		Interests:  []string{"tech", "science"},
		SkillLevel: "beginner",
		Onboarded:  false,
		CreatedAt:  "2025-01-02T03:04:05Z",
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(newTestRing())
	user := testUser()

	require.NoError(t, store.Save("tok-123", user))

	token, loaded, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, user, loaded)
}

func TestStoreLoadEmpty(t *testing.T) {
	store := NewStore(newTestRing())

	token, user, ok := store.Load()
	assert.False(t, ok)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestStoreLoadCorruptedUser(t *testing.T) {
	ring := newTestRing()
	require.NoError(t, ring.Set(keyring.Item{Key: keyToken, Data: []byte("tok")}))
	require.NoError(t, ring.Set(keyring.Item{Key: keyUser, Data: []byte("{not json")}))

	store := NewStore(ring)
	_, _, ok := store.Load()
	assert.False(t, ok)

	// corrupted state is discarded, not left to fail again
	_, err := ring.Get(keyToken)
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
}

func TestStoreLoadPartialState(t *testing.T) {
	t.Run("token only", func(t *testing.T) {
		ring := newTestRing()
		require.NoError(t, ring.Set(keyring.Item{Key: keyToken, Data: []byte("tok")}))

		_, _, ok := NewStore(ring).Load()
		assert.False(t, ok)
	})

	t.Run("user only", func(t *testing.T) {
		ring := newTestRing()
		require.NoError(t, ring.Set(keyring.Item{Key: keyUser, Data: []byte(`{"id":"u1"}`)}))

		_, _, ok := NewStore(ring).Load()
		assert.False(t, ok)
	})
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(newTestRing())
	first := testUser()
	second := testUser()
	second.Name = "Grace"

	require.NoError(t, store.Save("tok-1", first))
	require.NoError(t, store.Save("tok-2", second))

	token, loaded, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "tok-2", token)
	assert.Equal(t, "Grace", loaded.Name)
}

func TestStoreClearIdempotent(t *testing.T) {
	store := NewStore(newTestRing())
	require.NoError(t, store.Save("tok", testUser()))

	store.Clear()
	store.Clear() // clearing an empty store must be a no-op

	_, _, ok := store.Load()
	assert.False(t, ok)
}

// failSetRing makes the token write fail to exercise Save's rollback.
type failSetRing struct {
	keyring.Keyring
	failKey string
}

func (r *failSetRing) Set(item keyring.Item) error {
	if item.Key == r.failKey {
		return assert.AnError
	}
	return r.Keyring.Set(item)
}

func TestStoreSaveRollsBackOnTokenWriteFailure(t *testing.T) {
	ring := &failSetRing{Keyring: newTestRing(), failKey: keyToken}
	store := NewStore(ring)

	err := store.Save("tok", testUser())
	require.Error(t, err)

	// no half-written session left behind
	_, uerr := ring.Get(keyUser)
	assert.ErrorIs(t, uerr, keyring.ErrKeyNotFound)
}
