package ports

import (
	"context"
	"time"
)

// TokenRevoker tracks tokens invalidated before their natural expiry.
// Sign-out revokes the token's jti; the auth middleware rejects revoked ones.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
