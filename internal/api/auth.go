package api

import (
	"context"
	"fmt"

	"github.com/Harshchoudhary07/Greenly/internal/domain"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Access  string             `json:"access"`
	Refresh string             `json:"refresh"`
	User    domain.UserProfile `json:"user"`
}

// Register creates an account. The caller still has to log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.UserProfile, error) {
	data, err := c.Post(ctx, endpointAuthRegister, req)
	if err != nil {
		return nil, err
	}
	var user domain.UserProfile
	if err := decode(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and persists the token pair and profile into the
// session store.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*domain.UserProfile, error) {
	data, err := c.Post(ctx, endpointAuthLogin, req)
	if err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := decode(data, &resp); err != nil {
		return nil, err
	}

	if err := c.session.SetToken(resp.Access); err != nil {
		return nil, fmt.Errorf("store access token: %w", err)
	}
	if err := c.session.SetRefreshToken(resp.Refresh); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}
	if err := c.session.SetUser(&resp.User); err != nil {
		return nil, fmt.Errorf("store user profile: %w", err)
	}
	return &resp.User, nil
}

// RefreshSession exchanges the stored refresh token for a new access
// token and persists it.
func (c *Client) RefreshSession(ctx context.Context) error {
	refresh := c.session.RefreshToken()
	if refresh == "" {
		return ErrUnauthorized
	}

	data, err := c.Post(ctx, endpointAuthRefresh, map[string]string{"refresh": refresh})
	if err != nil {
		return err
	}

	var resp struct {
		Access string `json:"access"`
	}
	if err := decode(data, &resp); err != nil {
		return err
	}
	if err := c.session.SetToken(resp.Access); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	return nil
}

// Me fetches the current profile and refreshes the cached copy.
func (c *Client) Me(ctx context.Context) (*domain.UserProfile, error) {
	data, err := c.Get(ctx, endpointAuthMe, nil)
	if err != nil {
		return nil, err
	}

	var user domain.UserProfile
	if err := decode(data, &user); err != nil {
		return nil, err
	}
	if err := c.session.SetUser(&user); err != nil {
		return nil, fmt.Errorf("cache user profile: %w", err)
	}
	return &user, nil
}

// Logout tells the backend, then clears the session either way.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Post(ctx, endpointAuthLogout, nil)
	if clearErr := c.session.Clear(); clearErr != nil {
		return clearErr
	}
	return err
}
