package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the remote authority's root. Override with the
// AGENDO_API_URL environment variable or the Client's BaseURL field.
const DefaultBaseURL = "http://localhost:8000"

// SessionManager supplies the current access token and performs a bounded
// renewal when a call is rejected. Implemented by auth.Service.
type SessionManager interface {
	AccessToken(ctx context.Context) (string, error)
	Renew(ctx context.Context, staleAccess string) (string, error)
}

// APIError is a non-2xx response from the remote authority.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %d %s. Body: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// IsUnauthorized reports whether err is an authorization failure from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Client is the single authorized channel for outbound calls. Every call
// attaches the session's bearer token when one exists and retries exactly
// once after a successful renewal.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session SessionManager
}

// NewClient creates a Client against the given base URL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// AttachSession wires the session manager that supplies and renews tokens.
func (c *Client) AttachSession(s SessionManager) { c.Session = s }

// Call issues an authorized request and decodes the JSON response into out
// when out is non-nil. A 401 triggers one renewal-and-retry cycle; all
// other statuses pass through unmodified.
func (c *Client) Call(ctx context.Context, method, path string, payload, out interface{}) error {
	body, err := c.do(ctx, method, path, payload, false)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		log.Error().Err(err).Str("body_preview", string(body[:min(len(body), 200)])).Msg("Failed to parse response JSON")
		return fmt.Errorf("failed to parse response from %s: %w", path, err)
	}
	return nil
}

// do performs one request attempt. alreadyRetried marks a call that has
// been re-issued after a renewal; such a call is never retried again, which
// bounds retries to exactly one per original call.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}, alreadyRetried bool) ([]byte, error) {
	var accessToken string
	if c.Session != nil {
		var err error
		accessToken, err = c.Session.AccessToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load session token: %w", err)
		}
	}

	req, err := c.createRequest(ctx, method, path, payload, accessToken)
	if err != nil {
		return nil, err
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !alreadyRetried && c.Session != nil {
		log.Info().Str("path", path).Msg("Call rejected with 401, attempting session renewal")
		if _, renewErr := c.Session.Renew(ctx, accessToken); renewErr != nil {
			log.Warn().Err(renewErr).Msg("Session renewal failed, surfacing original authorization failure")
			return nil, fmt.Errorf("authorization failed and session could not be renewed: %w", renewErr)
		}
		// The renewal strictly completed before this single retry.
		return c.do(ctx, method, path, payload, true)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		log.Error().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("HTTP request returned non-OK status")
		return nil, apiErr
	}

	return body, nil
}

// createRequest creates an HTTP request with authorization and tracing headers.
func (c *Client) createRequest(ctx context.Context, method, path string, payload interface{}, accessToken string) (*http.Request, error) {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request payload: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("Failed to create HTTP request object")
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if accessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))
	}
	return req, nil
}

// sendRequest sends an HTTP request using the client's transport.
func (c *Client) sendRequest(req *http.Request) (*http.Response, error) {
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("Sending HTTP request")
	resp, err := httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}
	return resp, nil
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("url", resp.Request.URL.String()).Msg("Failed to read response body")
		return nil, err
	}
	return body, nil
}

// min helper function
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
