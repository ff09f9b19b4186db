package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields embedded in the access token's payload segment.
// They are decoded without signature verification: the server is the sole
// authority on the token's validity, and these flags are only used to pick
// which area of the application to show. Never gate a privileged server-side
// action on them.
type Claims struct {
	UserID   int64 `json:"user_id"`
	IsOwner  bool  `json:"is_owner"`
	IsAdmin  bool  `json:"is_admin"`
	IsClient bool  `json:"is_client"`
	jwt.RegisteredClaims
}

// DecodeClaims parses the payload of a three-part JWT without verifying its
// signature. It returns an error for empty or malformed input; callers must
// treat that the same as "no role".
func DecodeClaims(accessToken string) (*Claims, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token is empty")
	}

	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode access token claims: %w", err)
	}
	return &claims, nil
}
