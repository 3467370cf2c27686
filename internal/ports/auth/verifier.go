package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// SessionStore emite y revoca tokens opacos. Vive mientras viva el proceso
// (memoria) o lo que diga el backend (redis).
type SessionStore interface {
	AuthVerifier
	Issue(ctx context.Context, claims Claims) (string, error)
	Revoke(ctx context.Context, token string) error
}
