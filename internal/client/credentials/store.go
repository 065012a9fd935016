// Package credentials persists the access/refresh token pair for the
// FreshKeep backend, encrypted at rest in the client-local database.
//
// The store is deliberately forgiving: a failure to read, write, or clear a
// token must never break an otherwise working session, so every operation
// converts storage errors into a neutral outcome (absence or a no-op) and
// logs them for diagnostics.
package credentials

import "context"

// Names of the two stored secrets. Kept identical to the keys the mobile
// client used so an upgraded backend recognizes nothing changed.
const (
	accessTokenName  = "freshkeep_access_token"
	refreshTokenName = "freshkeep_refresh_token"
)

// Store is the credential store consumed by the request pipeline and the
// session facade.
type Store interface {
	// AccessToken returns the stored access token. ok is false when no token
	// is stored or retrieval failed.
	AccessToken(ctx context.Context) (token string, ok bool)

	// RefreshToken returns the stored refresh token, symmetric to AccessToken.
	RefreshToken(ctx context.Context) (token string, ok bool)

	// StoreTokens persists each non-empty token independently. An empty
	// value leaves that token's previously stored value untouched.
	StoreTokens(ctx context.Context, accessToken, refreshToken string)

	// ClearTokens deletes both tokens. Clearing an already-empty store is a
	// legitimate no-op.
	ClearTokens(ctx context.Context)
}
