package apix

import (
	"context"
	"net/http"
	"net/url"
)

// Login exchanges credentials for a user and bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	payload := map[string]string{"email": email, "password": password}

	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", payload, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// Register creates an account and signs it in, in one exchange.
func (c *Client) Register(ctx context.Context, username, email, password string) (AuthResponse, error) {
	payload := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}

	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", "", payload, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// RequestPasswordReset asks the backend to email a reset link. The backend
// responds identically whether or not the address is registered.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", "", payload, nil)
}

// VerifyResetToken checks a password reset token before showing the reset
// form, so a stale link fails early.
func (c *Client) VerifyResetToken(ctx context.Context, token string) error {
	path := "/auth/verify-reset-token?token=" + url.QueryEscape(token)
	return c.doJSON(ctx, http.MethodGet, path, "", nil, nil)
}

// ResetPassword completes a password reset using the emailed token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	payload := map[string]string{"token": token, "password": newPassword}
	return c.doJSON(ctx, http.MethodPost, "/auth/reset-password", "", payload, nil)
}
