package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Remote authority endpoints. The trailing slashes are significant.
const (
	tokenPath    = "/token/"
	registerPath = "/auth/register/"
	refreshPath  = "/token/refresh/"
)

// TokenPair is the credential pair issued by the authority on login,
// registration, and renewal.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegistrationForm carries the fields the registration endpoint expects.
type RegistrationForm struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Password2   string `json:"password2"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

// Login exchanges email and password for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	payload := map[string]string{"email": email, "password": password}

	// Login is itself a credential acquisition, so it never participates
	// in the renewal-and-retry cycle.
	body, err := c.do(ctx, http.MethodPost, tokenPath, payload, true)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	var pair TokenPair
	if err := json.Unmarshal(body, &pair); err != nil {
		return nil, fmt.Errorf("failed to parse login response: %w", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		return nil, fmt.Errorf("login response is missing tokens")
	}
	log.Info().Msg("Login succeeded")
	return &pair, nil
}

// Register creates an account and returns the issued token pair.
func (c *Client) Register(ctx context.Context, form RegistrationForm) (*TokenPair, error) {
	body, err := c.do(ctx, http.MethodPost, registerPath, form, true)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	var pair TokenPair
	if err := json.Unmarshal(body, &pair); err != nil {
		return nil, fmt.Errorf("failed to parse registration response: %w", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		return nil, fmt.Errorf("registration response is missing tokens")
	}
	log.Info().Msg("Registration succeeded")
	return &pair, nil
}

// RenewTokens exchanges a refresh token for a new access token at the
// authority. The refresh token in the response is empty unless the
// authority rotated it. Implements auth.TokenRenewer.
func (c *Client) RenewTokens(ctx context.Context, refreshToken string) (string, string, error) {
	payload := map[string]string{"refresh": refreshToken}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode refresh payload: %w", err)
	}

	// The refresh exchange authenticates with the refresh token alone; no
	// bearer header and no retry cycle.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+refreshPath, bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("failed to create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.sendRequest(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to post token refresh: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return "", "", fmt.Errorf("failed to read token refresh response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("token refresh failed with status %d: %s", resp.StatusCode, string(body))
	}

	var pair TokenPair
	if err := json.Unmarshal(body, &pair); err != nil {
		return "", "", fmt.Errorf("failed to parse token refresh response: %w", err)
	}
	if pair.Access == "" {
		return "", "", fmt.Errorf("token refresh response is missing the access token")
	}

	return pair.Access, pair.Refresh, nil
}
