package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the identity resolved from a validated bearer token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService abstracts signed-token issuance and verification. The auth
// middleware is the only consumer of ValidateToken; handlers read the
// resolved identity from the request context.
type TokenService interface {
	// GenerateToken signs a bearer token for the given identity.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken verifies a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
