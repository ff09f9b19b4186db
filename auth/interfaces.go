package auth

import (
	"context"

	"github.com/dmaraujo/agendo/db"
)

// CredentialStorer defines the contract for any component that can persist the session's credential pair.
type CredentialStorer interface {
	Get(ctx context.Context) (*db.Credential, error)
	Upsert(ctx context.Context, cred *db.Credential) error
	Clear(ctx context.Context) error
}

// TokenRenewer defines the contract for any component that can exchange a
// refresh token for a new token pair at the remote authority.
type TokenRenewer interface {
	RenewTokens(ctx context.Context, refreshToken string) (accessToken string, newRefreshToken string, err error)
}
