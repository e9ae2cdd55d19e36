package v1handler

import (
	"errors"
	"fmt"
	"io"
	"maike/internal/accounts"
	"maike/internal/auth"
	"maike/pkg/domain"
	"maike/pkg/logger"
	"maike/pkg/serrors"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const (
	profileImageField = "profileImage"
	// multipartOverhead leaves room for part headers and boundaries on top of
	// the file itself.
	multipartOverhead = 64 << 10
)

// UsersIndex handles GET /api/users.
func (h *Handler) UsersIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"message": "GET /api/users"})
}

// loginUser issues a token for u and answers {user, token}.
func (h *Handler) loginUser(w http.ResponseWriter, r *http.Request, u *domain.User) {
	token, expiresAt, err := h.deps.Auth.IssueToken(r.Context(), u.ID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.setSessionCookie(w, token, expiresAt)
	writeJSON(w, r, http.StatusOK, SessionResponse{User: ToUserResponse(u), Token: token})
}

// Register handles POST /api/users/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.deps.Auth.Register(r.Context(), auth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.loginUser(w, r, u)
}

// Login handles POST /api/users/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.deps.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.loginUser(w, r, u)
}

// Logout handles DELETE /api/users/session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Auth.Revoke(r.Context(), *SessionFromContext(r.Context())); err != nil {
		writeError(w, r, err)

		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser handles GET /api/users/current. Anonymous callers get null.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	s := SessionFromContext(r.Context())
	if s == nil {
		writeJSON(w, r, http.StatusOK, nil)

		return
	}

	u, err := h.deps.Accounts.User(r.Context(), s.UserID)
	if errors.Is(err, serrors.ErrNotFound) {
		writeJSON(w, r, http.StatusOK, nil)

		return
	}
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, ToUserResponse(u))
}

// UpdateCurrentUser handles PATCH /api/users/current.
func (h *Handler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.deps.Accounts.Update(r.Context(), GetUserIDFromContext(r.Context()), accounts.Changes{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, ToUserResponse(u))
}

// UploadProfileImage handles PATCH /api/users/upload. The profileImage part is
// streamed into the blob store without buffering the whole file.
func (h *Handler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	if h.opts.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes+multipartOverhead)
	}

	mr, err := r.MultipartReader()
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, msgValidation).
			WithFields(map[string]string{profileImageField: "Profile image is required"}))

		return
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			writeError(w, r, validationError(map[string]string{profileImageField: "Profile image is required"}))

			return
		}
		if err != nil {
			writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "malformed multipart body"))

			return
		}
		if part.FormName() != profileImageField {
			_ = part.Close()

			continue
		}

		u, err := h.deps.Accounts.UploadProfileImage(r.Context(), GetUserIDFromContext(r.Context()), part.FileName(), part)
		_ = part.Close()
		if err != nil {
			res := newError(r.Context(), err)
			if res.StatusCode == http.StatusInternalServerError {
				res.Response.Message = "Server error"
			}
			writeJSON(w, r, res.StatusCode, res.Response)

			return
		}

		writeJSON(w, r, http.StatusOK, UploadResponse{Message: "Image uploaded successfully", User: ToUserResponse(u)})

		return
	}
}

// ProfileImage handles GET /api/users/profile/{id}, streaming the blob chunks.
func (h *Handler) ProfileImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrNotFound, err, "profile image not found"))

		return
	}

	started := false
	n, err := h.deps.Accounts.StreamProfileImage(r.Context(), domain.BlobID(id), func(file *domain.BlobFile) io.Writer {
		started = true
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.FormatInt(file.Length, 10))
		w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": file.Filename}))
		w.Header().Set("Cache-Control", "private, max-age=86400")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(http.StatusOK)

		return w
	})
	if err != nil {
		if !started {
			writeError(w, r, err)

			return
		}
		// headers are gone, the client sees a short body
		logger.Error(r.Context(), "could not stream profile image",
			zap.Error(fmt.Errorf("after %d bytes: %w", n, err)))
	}
}
