package auth

import (
	"context"
	"maike/pkg/domain"
	"time"
)

// Session is the authenticated identity carried by a valid token.
type Session struct {
	// UserID is the token subject.
	UserID domain.UserID
	// TokenID is the unique token identifier (jti), used for revocation.
	TokenID string
	// ExpiresAt is when the token stops being accepted.
	ExpiresAt time.Time
}

// RegisterInput holds the fields needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Authenticator interface {
	// Register creates a user with a hashed password. Taken e-mails or
	// usernames are reported as a bad request with per-field messages.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login checks the credentials and returns the matching user.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// IssueToken signs a new session token for the user.
	IssueToken(ctx context.Context, userID domain.UserID) (string, time.Time, error)
	// Restore validates a token and returns its session.
	Restore(ctx context.Context, token string) (*Session, error)
	// Revoke invalidates the session's token until it expires.
	Revoke(ctx context.Context, s Session) error
}
