package auth

import "errors"

// ErrInvalidToken: token desconocido, revocado o vencido.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims representa la identidad asociada a un token.
type Claims struct {
	UserID   string
	Username string
}
