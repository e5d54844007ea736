package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshchoudhary07/Greenly/internal/config"
	"github.com/Harshchoudhary07/Greenly/internal/domain"
	"github.com/Harshchoudhary07/Greenly/internal/storage"
)

func TestManager_TokenRoundTrip(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), nil)

	assert.Empty(t, m.Token())
	assert.False(t, m.IsLoggedIn())

	require.NoError(t, m.SetToken("access-abc"))
	require.NoError(t, m.SetRefreshToken("refresh-def"))

	assert.Equal(t, "access-abc", m.Token())
	assert.Equal(t, "refresh-def", m.RefreshToken())
	assert.True(t, m.IsLoggedIn())
}

func TestManager_UserRoundTrip(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), nil)

	assert.Nil(t, m.User())

	require.NoError(t, m.SetUser(&domain.UserProfile{
		ID:       "u1",
		Username: "asha",
		Role:     domain.RoleVendor,
	}))

	user := m.User()
	require.NotNil(t, user)
	assert.Equal(t, "asha", user.Username)
	assert.True(t, m.HasRole(domain.RoleVendor))
	assert.False(t, m.HasRole(domain.RoleCustomer))
}

func TestManager_ClearRemovesAllKeys(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store, nil)

	require.NoError(t, m.SetToken("t"))
	require.NoError(t, m.SetRefreshToken("r"))
	require.NoError(t, m.SetUser(&domain.UserProfile{ID: "u1"}))

	require.NoError(t, m.Clear())

	for _, key := range []string{config.KeyAuthToken, config.KeyRefreshToken, config.KeyUserData} {
		_, err := store.Get(key)
		assert.ErrorIs(t, err, storage.ErrNotFound, key)
	}
	assert.False(t, m.IsLoggedIn())
	assert.Nil(t, m.User())
}

func TestManager_CorruptUserProfileIsNil(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(config.KeyUserData, []byte("{not json")))

	m := NewManager(store, nil)
	assert.Nil(t, m.User())
}
