// Package session defines how issued session tokens are revoked before they
// expire.
package session

import (
	"context"
	"time"
)

// Denylist records revoked token IDs until their natural expiry.
//
//go:generate mockgen -package mocksession -source=interface.go -destination=mock/mocksession.go *
type Denylist interface {
	// Revoke marks the token identified by jti as revoked until expiresAt.
	// Tokens that already expired are ignored.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	// IsRevoked reports whether jti was revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
