// Package accounts manages user profiles and profile pictures.
package accounts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maike/internal/config"
	"maike/pkg/domain"
	"maike/pkg/logger"
	"maike/pkg/metrics"
	"maike/pkg/serrors"
	"maike/pkg/storage"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

const (
	// DefaultMaxUploadBytes is used when Options.MaxUploadBytes is not set.
	DefaultMaxUploadBytes = 5 << 20

	// sniffLen is how much of an upload is inspected to detect its type.
	sniffLen = 3072

	msgEmailTaken     = "A user has already registered with this email"
	msgUsernameTaken  = "A user has already registered with this username"
	msgUsernameLength = "Username must be between 2 and 30 characters"
)

// Options configure profile uploads.
type Options struct {
	// MaxUploadBytes caps the size of a profile picture.
	MaxUploadBytes int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxUploadBytes: cfg.HTTP.MaxUploadBytes}
}

type accounts struct {
	options Options
	storage storage.Storage
	metrics *metrics.Instruments
}

func (a *accounts) User(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (a *accounts) Update(ctx context.Context, userID domain.UserID, changes Changes) (*domain.User, error) {
	var updates storage.UserUpdates
	var username, email string
	if changes.Username != nil {
		username = strings.TrimSpace(*changes.Username)
		if n := utf8.RuneCountInString(username); n < 2 || n > 30 {
			return nil, serrors.With(serrors.ErrBadRequest, "Validation Error").
				WithFields(map[string]string{"username": msgUsernameLength})
		}
		updates.Username = &username
	}
	if changes.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*changes.Email))
		updates.Email = &email
	}
	if updates.Username == nil && updates.Email == nil {
		return a.User(ctx, userID)
	}

	existing, err := a.storage.UsersByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("could not look up existing users: %w", err)
	}
	fields := map[string]string{}
	for _, u := range existing {
		if u.ID == userID {
			continue
		}
		if email != "" && strings.EqualFold(u.Email, email) {
			fields["email"] = msgEmailTaken
		}
		if username != "" && u.Username == username {
			fields["username"] = msgUsernameTaken
		}
	}
	if len(fields) > 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Validation Error").WithFields(fields)
	}

	user, err := a.storage.UpdateUser(ctx, userID, updates)
	if err != nil {
		var uv *storage.UniqueViolationError
		if errors.As(err, &uv) {
			msg := msgUsernameTaken
			if uv.Field == "email" {
				msg = msgEmailTaken
			}

			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Validation Error").
				WithFields(map[string]string{uv.Field: msg})
		}

		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// capReader fails once more than left bytes have been read.
type capReader struct {
	r    io.Reader
	left int64
	max  int64
}

func (c *capReader) Read(p []byte) (int, error) {
	if c.left < 0 {
		return 0, serrors.With(serrors.ErrTooLarge, "profile image exceeds %d bytes", c.max)
	}
	if int64(len(p)) > c.left+1 {
		p = p[:c.left+1]
	}
	n, err := c.r.Read(p)
	c.left -= int64(n)
	if c.left < 0 {
		return n, serrors.With(serrors.ErrTooLarge, "profile image exceeds %d bytes", c.max)
	}

	return n, err //nolint: wrapcheck
}

// sniff detects the content type from the head of r and returns a reader that
// yields the full content again.
func sniff(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, err
	}
	head = head[:n]
	if n == 0 {
		return "", nil, serrors.With(serrors.ErrBadRequest, "profile image is empty").
			WithFields(map[string]string{"profileImage": "Profile image is empty"})
	}

	mt := mimetype.Detect(head)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", nil, serrors.With(serrors.ErrBadRequest, "unsupported content type %s", mt.String()).
			WithFields(map[string]string{"profileImage": "Profile image must be an image"})
	}

	return mt.String(), io.MultiReader(bytes.NewReader(head), r), nil
}

func (a *accounts) UploadProfileImage(ctx context.Context, userID domain.UserID, filename string, r io.Reader) (*domain.User, error) {
	limited := &capReader{r: r, left: a.options.MaxUploadBytes, max: a.options.MaxUploadBytes}
	contentType, content, err := sniff(limited)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	var blob *domain.BlobFile
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.UserByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not get user: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "user not found")
		}

		blob, err = tx.StoreBlob(ctx, domain.BlobFile{
			Filename:    filename,
			ContentType: contentType,
			ChunkSize:   domain.DefaultChunkSize,
		}, content)
		if err != nil {
			return fmt.Errorf("could not store profile image: %w", err)
		}

		user, err = tx.UpdateUser(ctx, userID, storage.UserUpdates{ProfileImage: &blob.ID})
		if err != nil {
			return fmt.Errorf("could not set profile image: %w", err)
		}
		if user == nil {
			return serrors.With(serrors.ErrNotFound, "user not found")
		}

		if current.ProfileImage != nil {
			if _, err := tx.DeleteBlob(ctx, *current.ProfileImage); err != nil {
				return fmt.Errorf("could not delete previous profile image: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	a.metrics.Uploaded(ctx, blob.Length)
	logger.Info(ctx, "profile image uploaded",
		zap.Stringer("blobId", blob.ID), zap.Int64("length", blob.Length), zap.String("contentType", contentType))

	return user, nil
}

func (a *accounts) StreamProfileImage(
	ctx context.Context,
	blobID domain.BlobID,
	begin func(file *domain.BlobFile) io.Writer,
) (int64, error) {
	var written int64
	err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		file, err := tx.BlobByID(ctx, blobID)
		if err != nil {
			return fmt.Errorf("could not get profile image: %w", err)
		}
		if file == nil {
			return serrors.With(serrors.ErrNotFound, "profile image not found")
		}

		written, err = tx.ReadBlob(ctx, blobID, begin(file))
		if err != nil {
			return fmt.Errorf("could not read profile image: %w", err)
		}

		return nil
	})

	return written, err
}

// New creates an Accounts service. A nil metrics records nothing.
func New(storage storage.Storage, m *metrics.Instruments, options Options) Accounts {
	if options.MaxUploadBytes <= 0 {
		options.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if m == nil {
		m = metrics.Noop()
	}

	return &accounts{
		options: options,
		storage: storage,
		metrics: m,
	}
}
