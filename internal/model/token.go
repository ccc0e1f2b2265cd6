package model

import "github.com/google/uuid"

// TokenManager issues and validates signed session tokens. Tokens are valid
// until natural expiry; there is no revocation.
type TokenManager interface {
	Generate(userID uuid.UUID) (string, error)
	Parse(token string) (uuid.UUID, error)
}
