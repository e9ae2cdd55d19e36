package v1handler

import (
	"context"
	"errors"
	"maike/internal/auth"
	"maike/pkg/domain"
	"maike/pkg/logger"
	"maike/pkg/serrors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type sessionKey struct{}

// WithSession returns a context carrying the authenticated session.
func WithSession(ctx context.Context, s *auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the authenticated session, or nil.
func SessionFromContext(ctx context.Context) *auth.Session {
	s, _ := ctx.Value(sessionKey{}).(*auth.Session)

	return s
}

// GetUserIDFromContext returns the authenticated user, or the zero ID.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	if s := SessionFromContext(ctx); s != nil {
		return s.UserID
	}

	return domain.UserID{}
}

// tokenFromRequest reads the bearer token, falling back to the session cookie.
func (h *Handler) tokenFromRequest(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); authz != "" {
		scheme, token, found := strings.Cut(authz, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(h.opts.CookieName); err == nil {
		return c.Value
	}

	return ""
}

// RestoreUser attaches the session of a valid token to the request context. A
// missing or invalid token leaves the request anonymous. When revocation can
// not be checked the request is answered 503.
func (h *Handler) RestoreUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.tokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)

			return
		}

		s, err := h.deps.Auth.Restore(r.Context(), token)
		switch {
		case errors.Is(err, serrors.ErrUnavailable):
			writeError(w, r, err)

			return
		case err != nil:
			logger.Debug(r.Context(), "ignoring invalid session token", zap.Error(err))
			next.ServeHTTP(w, r)

			return
		}

		ctx := logger.WithFields(WithSession(r.Context(), s), zap.Stringer("userID", s.UserID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser answers 401 unless RestoreUser attached a session.
func (h *Handler) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "Unauthorized"))

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
