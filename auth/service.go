package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmaraujo/agendo/db"
	"github.com/rs/zerolog/log"
)

// ErrNoRefreshCredential is returned when a renewal is requested but no
// refresh token is stored. The remote authority is never contacted in
// that case.
var ErrNoRefreshCredential = errors.New("no refresh credential stored; please login first")

// Service owns the session lifecycle: it reads and writes the persisted
// credential pair, derives the current role, and performs token renewal.
// It is injected into the API client and the route guard instead of being
// read from package globals.
type Service struct {
	Store   CredentialStorer
	Renewer TokenRenewer

	// renewMu serializes renewals so that two calls failing authorization
	// at the same time result in a single exchange at the authority.
	renewMu sync.Mutex
}

// NewService is the constructor for the session service.
func NewService(store CredentialStorer, renewer TokenRenewer) *Service {
	return &Service{Store: store, Renewer: renewer}
}

// AccessToken returns the stored access token, or the empty string when no
// session exists. Callers issuing requests treat an empty token as an
// unauthenticated call.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	cred, err := s.Store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read stored credential: %w", err)
	}
	if cred == nil {
		return "", nil
	}
	return cred.AccessToken, nil
}

// Authenticated reports whether an access token is currently stored.
func (s *Service) Authenticated(ctx context.Context) bool {
	token, err := s.AccessToken(ctx)
	return err == nil && token != ""
}

// Role derives the current role from the stored access token.
func (s *Service) Role(ctx context.Context) Role {
	token, err := s.AccessToken(ctx)
	if err != nil {
		return RoleNone
	}
	return ResolveRole(token)
}

// SaveSession persists a freshly issued token pair, replacing any previous
// session. Both members are written as a unit.
func (s *Service) SaveSession(ctx context.Context, accessToken, refreshToken string) error {
	if err := s.Store.Upsert(ctx, &db.Credential{AccessToken: accessToken, RefreshToken: refreshToken}); err != nil {
		return fmt.Errorf("failed to save session credential: %w", err)
	}
	return nil
}

// Logout tears the session down by clearing both credential members.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.Store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session credential: %w", err)
	}
	log.Info().Msg("Session terminated")
	return nil
}

// Renew exchanges the stored refresh token for a new access token and
// persists the result. staleAccess is the access token that was rejected
// and triggered this renewal; if the stored token already differs from it,
// a concurrent renewal has completed and its result is returned without a
// second exchange. Any failure clears the store entirely so a half-valid
// session can never survive a failed renewal.
func (s *Service) Renew(ctx context.Context, staleAccess string) (string, error) {
	s.renewMu.Lock()
	defer s.renewMu.Unlock()

	cred, err := s.Store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read stored credential: %w", err)
	}

	if cred == nil || cred.RefreshToken == "" {
		if clearErr := s.Store.Clear(ctx); clearErr != nil {
			log.Error().Err(clearErr).Msg("Failed to clear credential after missing refresh token")
		}
		return "", ErrNoRefreshCredential
	}

	// Coalesce concurrent renewals: another call already replaced the token.
	if staleAccess != "" && cred.AccessToken != "" && cred.AccessToken != staleAccess {
		log.Debug().Msg("Access token already renewed by a concurrent call")
		return cred.AccessToken, nil
	}

	log.Info().Msg("Access token rejected, renewing session")
	newAccess, newRefresh, err := s.Renewer.RenewTokens(ctx, cred.RefreshToken)
	if err != nil {
		if clearErr := s.Store.Clear(ctx); clearErr != nil {
			log.Error().Err(clearErr).Msg("Failed to clear credential after rejected renewal")
		}
		return "", fmt.Errorf("failed to renew session: %w", err)
	}

	// The authority rotates the refresh token only when it includes a new
	// one in the response; otherwise the current one stays valid.
	if newRefresh == "" {
		newRefresh = cred.RefreshToken
	}

	if err := s.Store.Upsert(ctx, &db.Credential{AccessToken: newAccess, RefreshToken: newRefresh}); err != nil {
		if clearErr := s.Store.Clear(ctx); clearErr != nil {
			log.Error().Err(clearErr).Msg("Failed to clear credential after failed save")
		}
		return "", fmt.Errorf("failed to save renewed credential: %w", err)
	}

	log.Info().Msg("Session renewed successfully")
	return newAccess, nil
}
