// Package auth registers and authenticates users and manages their RS256
// session tokens.
package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"maike/internal/config"
	"maike/pkg/domain"
	"maike/pkg/logger"
	"maike/pkg/metrics"
	"maike/pkg/serrors"
	"maike/pkg/session"
	"maike/pkg/storage"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost matches the salt rounds accounts were created with.
	DefaultBcryptCost = 10

	msgValidation         = "Validation Error"
	msgInvalidCredentials = "Invalid credentials"
	msgEmailTaken         = "A user has already registered with this email"
	msgUsernameTaken      = "A user has already registered with this username"
	msgUsernameLength     = "Username must be between 2 and 30 characters"

	minUsernameLen = 2
	maxUsernameLen = 30
)

// Options configure token signing and password hashing.
type Options struct {
	// PrivateKey is the PEM encoded RSA key used to sign tokens.
	PrivateKey string
	// PublicKey is the PEM encoded RSA key used to verify tokens.
	PublicKey string
	// TTL is the lifetime of issued tokens.
	TTL time.Duration
	// BcryptCost is the bcrypt work factor. Zero means DefaultBcryptCost.
	BcryptCost int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PrivateKey: cfg.JWT.PrivateKey,
		PublicKey:  cfg.JWT.PublicKey,
		TTL:        cfg.JWT.TTL,
		BcryptCost: DefaultBcryptCost,
	}
}

type authenticator struct {
	storage    storage.Storage
	denylist   session.Denylist
	metrics    *metrics.Instruments
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
	cost       int
	now        func() time.Time

	// dummyHash is compared against when the e-mail is unknown.
	dummyHash func() []byte
}

// Register normalizes the e-mail to lower case, rejects taken e-mails and
// usernames, and stores the user with a bcrypt hash of the password.
func (a *authenticator) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return nil, serrors.With(serrors.ErrBadRequest, msgValidation).
			WithFields(map[string]string{"username": msgUsernameLength})
	}

	existing, err := a.storage.UsersByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("could not look up existing users: %w", err)
	}
	fields := map[string]string{}
	for _, u := range existing {
		if strings.EqualFold(u.Email, email) {
			fields["email"] = msgEmailTaken
		}
		if u.Username == username {
			fields["username"] = msgUsernameTaken
		}
	}
	if len(fields) > 0 {
		return nil, serrors.With(serrors.ErrBadRequest, msgValidation).WithFields(fields)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), a.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, msgValidation).
				WithFields(map[string]string{"password": "Password is too long"})
		}

		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := a.storage.CreateUser(ctx, domain.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
	})
	if err != nil {
		// lost a race against a concurrent registration
		var uv *storage.UniqueViolationError
		if errors.As(err, &uv) {
			msg := msgUsernameTaken
			if uv.Field == "email" {
				msg = msgEmailTaken
			}

			return nil, serrors.Wrap(serrors.ErrBadRequest, err, msgValidation).
				WithFields(map[string]string{uv.Field: msg})
		}

		return nil, fmt.Errorf("could not create user: %w", err)
	}

	logger.Info(ctx, "user registered", zap.Stringer("userID", user.ID))

	return user, nil
}

func (a *authenticator) Login(ctx context.Context, email, password string) (*domain.User, error) {
	invalid := serrors.With(serrors.ErrBadRequest, msgInvalidCredentials).
		WithFields(map[string]string{"email": msgInvalidCredentials})

	user, err := a.storage.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		// same bcrypt work as a wrong password
		_ = bcrypt.CompareHashAndPassword(a.dummyHash(), []byte(password))
		a.metrics.Login(ctx, false)

		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		a.metrics.Login(ctx, false)

		return nil, invalid
	}
	a.metrics.Login(ctx, true)

	return user, nil
}

func (a *authenticator) IssueToken(_ context.Context, userID domain.UserID) (string, time.Time, error) {
	if a.privateKey == nil {
		return "", time.Time{}, serrors.With(serrors.ErrInternal, "token signing key is not configured")
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(a.privateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Restore verifies the token signature, algorithm and validity window, and
// checks the denylist. Every rejection is reported as ErrUnauthorized.
func (a *authenticator) Restore(ctx context.Context, token string) (*Session, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.publicKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}
	if claims.ID == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "token has no id")
	}

	if a.denylist != nil {
		revoked, err := a.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not check token revocation")
		}
		if revoked {
			return nil, serrors.With(serrors.ErrUnauthorized, "token revoked")
		}
	}

	return &Session{
		UserID:    userID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (a *authenticator) Revoke(ctx context.Context, s Session) error {
	if a.denylist == nil {
		return serrors.With(serrors.ErrUnavailable, "token revocation is not configured")
	}
	if err := a.denylist.Revoke(ctx, s.TokenID, s.ExpiresAt); err != nil {
		return fmt.Errorf("could not revoke session: %w", err)
	}

	return nil
}

// New creates an Authenticator. The public key is required; without a private
// key tokens can be verified but not issued. denylist may be nil, in which
// case tokens cannot be revoked.
func New(storage storage.Storage, denylist session.Denylist, m *metrics.Instruments, options Options) (Authenticator, error) {
	if options.PublicKey == "" {
		return nil, errors.New("jwt public key is required")
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	var privateKey *rsa.PrivateKey
	if options.PrivateKey != "" {
		privateKey, err = jwt.ParseRSAPrivateKeyFromPEM([]byte(options.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
	}

	cost := options.BcryptCost
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	if m == nil {
		m = metrics.Noop()
	}

	return &authenticator{
		storage:    storage,
		denylist:   denylist,
		metrics:    m,
		privateKey: privateKey,
		publicKey:  publicKey,
		ttl:        options.TTL,
		cost:       cost,
		now:        time.Now,
		dummyHash: sync.OnceValue(func() []byte {
			// only fails for passwords over 72 bytes
			hash, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)

			return hash
		}),
	}, nil
}
