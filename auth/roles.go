package auth

// Role is the access level derived from the current access token's claims.
// It is always recomputed from the token and never persisted, so it cannot
// drift from what the token actually says.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
	RoleNone   Role = "none"
)

// ResolveRole maps the access token's claims to exactly one role.
// A claims object may carry several flags at once; owner outranks admin,
// which outranks client. A missing or undecodable token resolves to RoleNone.
func ResolveRole(accessToken string) Role {
	claims, err := DecodeClaims(accessToken)
	if err != nil {
		return RoleNone
	}

	switch {
	case claims.IsOwner:
		return RoleOwner
	case claims.IsAdmin:
		return RoleAdmin
	case claims.IsClient:
		return RoleClient
	default:
		return RoleNone
	}
}
