// Package v1handler implements the REST endpoints of the MAIke API.
package v1handler

import (
	"context"
	"errors"
	"maike/internal/accounts"
	"maike/internal/auth"
	"maike/internal/config"
	"maike/internal/gallery"
	"maike/internal/lists"
	"maike/pkg/controller"
	"maike/pkg/logger"
	"maike/pkg/serrors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Pinger reports whether a backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the services the handlers delegate to.
type Deps struct {
	Auth     auth.Authenticator
	Accounts accounts.Accounts
	Lists    lists.Lists
	Gallery  gallery.Gallery
	Health   Pinger
}

// Options configure the handlers.
type Options struct {
	// CookieName is the cookie carrying the session token.
	CookieName string
	// SecureCookie marks the session cookie Secure.
	SecureCookie bool
	// MaxUploadBytes caps a profile picture.
	MaxUploadBytes int64
	// Throttle, when set, limits the register and login endpoints.
	Throttle *controller.RateLimiter
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CookieName:     cfg.JWT.CookieName,
		SecureCookie:   cfg.Environment == logger.ProductionEnvironment,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		Throttle:       controller.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL),
	}
}

type Handler struct {
	deps Deps
	opts Options
}

func New(deps Deps, opts Options) *Handler {
	if opts.CookieName == "" {
		opts.CookieName = "jwt"
	}
	if opts.Throttle != nil {
		opts.Throttle.Deny = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, r, serrors.With(serrors.ErrRateLimited, "Too many requests, try again later"))
		})
	}

	return &Handler{deps: deps, opts: opts}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	StatusCode int               `json:"statusCode"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// NewError maps err to a client-safe response. Internal causes are logged and
// replaced by a generic message.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		err = serrors.Wrap(serrors.ErrTooLarge, err, "request body exceeds %d bytes", mbe.Limit)
	}
	if errors.Is(err, context.DeadlineExceeded) && serrors.ToPublic(err).Kind == serrors.ErrInternal {
		err = serrors.Wrap(serrors.ErrTimeout, err, "request timed out")
	}

	pub := serrors.ToPublic(err)
	if pub.Status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: pub.Status,
		Response: ErrorResponse{
			Code:       pub.Kind.Error(),
			Message:    pub.Message,
			StatusCode: pub.Status,
			Errors:     pub.Fields,
		},
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(w, r, res.StatusCode, res.Response)
}

// Routes registers every API route on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.RestoreUser)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.UsersIndex)
			r.Group(func(r chi.Router) {
				if h.opts.Throttle != nil {
					r.Use(h.opts.Throttle.Handler)
				}
				r.Post("/register", h.Register)
				r.Post("/login", h.Login)
			})
			r.Get("/current", h.CurrentUser)
			r.Get("/profile/{id}", h.ProfileImage)
			r.Group(func(r chi.Router) {
				r.Use(h.RequireUser)
				r.Delete("/session", h.Logout)
				r.Patch("/current", h.UpdateCurrentUser)
				r.Patch("/upload", h.UploadProfileImage)
			})
		})

		r.Route("/lists", func(r chi.Router) {
			r.Use(h.RequireUser)
			r.Post("/", h.CreateList)
			r.Get("/user/{userId}", h.UserLists)
			r.Get("/{id}", h.GetList)
			r.Patch("/{id}", h.UpdateList)
			r.Delete("/{id}", h.DeleteList)
			r.Post("/{id}/images", h.GenerateImages)
			r.Get("/{id}/images", h.ListImages)
		})

		r.Route("/images", func(r chi.Router) {
			r.Use(h.RequireUser)
			r.Get("/user/{userId}", h.UserImages)
			r.Post("/", h.SaveImage)
			r.Patch("/{id}", h.UpdateImage)
			r.Delete("/{id}", h.DeleteImage)
		})
	})
}

// Health answers 200 when the store is reachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.deps.Health != nil {
		if err := h.deps.Health.Ping(r.Context()); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				writeError(w, r, err)

				return
			}
			logger.Warn(r.Context(), "health check failed", zap.Error(err))
			writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})

			return
		}
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
