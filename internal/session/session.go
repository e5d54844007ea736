// Package session holds the auth token and cached user profile in
// durable storage. The HTTP client reads the token on every outbound
// request and clears the whole session on an authentication failure.
package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Harshchoudhary07/Greenly/internal/config"
	"github.com/Harshchoudhary07/Greenly/internal/domain"
	"github.com/Harshchoudhary07/Greenly/internal/storage"
)

// Manager persists the session as three independent keys: access token,
// refresh token and serialized user profile. Every read goes back to
// storage; no in-memory copy is authoritative.
type Manager struct {
	store storage.Store
	log   *zap.Logger
}

func NewManager(store storage.Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, log: log}
}

// Token returns the stored access token, or "" when logged out.
func (m *Manager) Token() string {
	return m.getString(config.KeyAuthToken)
}

func (m *Manager) SetToken(token string) error {
	return m.store.Set(config.KeyAuthToken, []byte(token))
}

// RefreshToken returns the stored refresh token, or "".
func (m *Manager) RefreshToken() string {
	return m.getString(config.KeyRefreshToken)
}

func (m *Manager) SetRefreshToken(token string) error {
	return m.store.Set(config.KeyRefreshToken, []byte(token))
}

// User returns the cached profile, or nil when none is stored.
func (m *Manager) User() *domain.UserProfile {
	data, err := m.store.Get(config.KeyUserData)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.Warn("read user profile failed", zap.Error(err))
		}
		return nil
	}

	var user domain.UserProfile
	if err := json.Unmarshal(data, &user); err != nil {
		m.log.Warn("decode user profile failed", zap.Error(err))
		return nil
	}
	return &user
}

func (m *Manager) SetUser(user *domain.UserProfile) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user profile: %w", err)
	}
	return m.store.Set(config.KeyUserData, data)
}

// IsLoggedIn reports whether an access token is present.
func (m *Manager) IsLoggedIn() bool {
	return m.Token() != ""
}

// HasRole reports whether the cached user carries the given role.
func (m *Manager) HasRole(role string) bool {
	user := m.User()
	return user != nil && user.Role == role
}

// Clear removes the token, refresh token and cached profile. Called on
// logout and on an Unauthorized response.
func (m *Manager) Clear() error {
	var firstErr error
	for _, key := range []string{config.KeyAuthToken, config.KeyRefreshToken, config.KeyUserData} {
		if err := m.store.Delete(key); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("clear session key %q: %w", key, err)
		}
	}
	return firstErr
}

func (m *Manager) getString(key string) string {
	data, err := m.store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	return string(data)
}
