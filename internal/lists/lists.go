// Package lists manages avatar attribute lists and the generation of images
// for them.
package lists

import (
	"context"
	"errors"
	"fmt"
	"maike/internal/config"
	"maike/pkg/domain"
	"maike/pkg/imagegen"
	"maike/pkg/logger"
	"maike/pkg/metrics"
	"maike/pkg/serrors"
	"maike/pkg/storage"
	"time"

	"go.uber.org/zap"
)

// Options configure generation.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker
	// makes before marking a generation failed.
	MaxAttempts int
	// ImagesPerList is how many images a generation asks for.
	ImagesPerList int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:   cfg.ImageGen.MaxAttempts,
		ImagesPerList: cfg.ImageGen.ImagesPerList,
	}
}

type lists struct {
	options  Options
	storage  storage.Storage
	provider imagegen.Client
	metrics  *metrics.Instruments
}

func validationError(fields map[string]string) error {
	return serrors.With(serrors.ErrBadRequest, "Validation Error").WithFields(fields)
}

// owned fetches a live list and checks that userID owns it.
func (l *lists) owned(ctx context.Context, st storage.AllStorage, userID domain.UserID, listID domain.ListID) (*domain.List, error) {
	list, err := st.ListByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("could not get list: %w", err)
	}
	if list == nil {
		return nil, serrors.With(serrors.ErrNotFound, "list not found")
	}
	if list.UserID != userID {
		return nil, serrors.With(serrors.ErrForbidden, "list belongs to another user")
	}

	return list, nil
}

func (l *lists) Create(ctx context.Context, userID domain.UserID, attrs domain.Attributes) (*domain.List, error) {
	if fields := attrs.Validate(); fields != nil {
		return nil, validationError(fields)
	}

	list, err := l.storage.StoreList(ctx, domain.List{
		UserID:           userID,
		Attributes:       attrs,
		GenerationStatus: domain.GenerationStatusNone,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store list: %w", err)
	}

	return list, nil
}

func (l *lists) UserLists(ctx context.Context, userID, ownerID domain.UserID) ([]domain.List, error) {
	if userID != ownerID {
		return nil, serrors.With(serrors.ErrForbidden, "cannot read another user's lists")
	}

	res, err := l.storage.UserLists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("could not get user lists: %w", err)
	}

	return res, nil
}

func (l *lists) Get(ctx context.Context, userID domain.UserID, listID domain.ListID) (*domain.List, error) {
	return l.owned(ctx, l.storage, userID, listID)
}

func (l *lists) Update(ctx context.Context, userID domain.UserID, listID domain.ListID, patch Patch) (*domain.List, error) {
	var updated *domain.List
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		list, err := l.owned(ctx, tx, userID, listID)
		if err != nil {
			return err
		}

		attrs := list.Attributes
		apply := func(dst *string, v string) {
			if v != "" {
				*dst = v
			}
		}
		apply(&attrs.ClothingAccessory, patch.ClothingAccessory)
		apply(&attrs.HairColor, patch.HairColor)
		apply(&attrs.Gender, patch.Gender)
		apply(&attrs.Background, patch.Background)
		apply(&attrs.ArtStyle, patch.ArtStyle)
		apply(&attrs.WebsiteStyle, patch.WebsiteStyle)
		if fields := attrs.Validate(); fields != nil {
			return validationError(fields)
		}

		updated, err = tx.UpdateList(ctx, listID, storage.ListUpdates{Attributes: &attrs})
		if err != nil {
			return fmt.Errorf("could not update list: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "list not found")
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update list: %w", err)
	}

	return updated, nil
}

// Delete soft-deletes the list. A pending generation job notices the list is
// gone and cancels itself.
func (l *lists) Delete(ctx context.Context, userID domain.UserID, listID domain.ListID) error {
	if _, err := l.owned(ctx, l.storage, userID, listID); err != nil {
		return err
	}

	res, err := l.storage.DeleteList(ctx, userID, listID)
	if err != nil {
		return fmt.Errorf("could not delete list: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "list not found")
	}

	return nil
}

func (l *lists) Generate(ctx context.Context, userID domain.UserID, listID domain.ListID) (*domain.List, error) {
	var list *domain.List
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := l.owned(ctx, tx, userID, listID)
		if err != nil {
			return err
		}

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			ListID:      listID,
			maxAttempts: l.options.MaxAttempts,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// river unique jobs keep one generation per list in flight; the
		// running one will complete this list.
		if !jobAdded {
			list = current

			return nil
		}

		empty := ""
		list, err = tx.UpdateList(ctx, listID, storage.ListUpdates{
			Status:    domain.GenerationStatusPending,
			LastError: &empty,
		})
		if err != nil {
			return fmt.Errorf("could not mark list pending: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue generation: %w", err)
	}

	return list, nil
}

func (l *lists) Images(ctx context.Context, userID domain.UserID, listID domain.ListID) ([]domain.Image, error) {
	if _, err := l.owned(ctx, l.storage, userID, listID); err != nil {
		return nil, err
	}

	images, err := l.storage.ListImages(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("could not get list images: %w", err)
	}

	return images, nil
}

// markFailedTimeout bounds the status write made after a failed attempt. It
// runs detached from the job context, which may already be done.
const markFailedTimeout = 5 * time.Second

func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), markFailedTimeout)
}

func (l *lists) fail(ctx context.Context, listID domain.ListID, cause error) {
	ctx, cancel := detach(ctx)
	defer cancel()

	msg := cause.Error()
	if _, err := l.storage.UpdateList(ctx, listID, storage.ListUpdates{
		Status:    domain.GenerationStatusFailed,
		LastError: &msg,
	}); err != nil {
		logger.Error(ctx, "could not mark list failed", zap.Error(err))
	}
}

func (l *lists) MarkFailed(ctx context.Context, listID domain.ListID, cause error) error {
	ctx, cancel := detach(ctx)
	defer cancel()

	list, err := l.storage.ListByID(ctx, listID)
	if err != nil {
		return fmt.Errorf("could not get list: %w", err)
	}
	if list == nil || list.GenerationStatus != domain.GenerationStatusPending {
		return nil
	}

	msg := cause.Error()
	if _, err := l.storage.UpdateList(ctx, listID, storage.ListUpdates{
		Status:    domain.GenerationStatusFailed,
		LastError: &msg,
	}); err != nil {
		return fmt.Errorf("could not mark list failed: %w", err)
	}

	return nil
}

// GenerateImages asks the provider for images and stores them on the list.
//
// Errors of kind ErrConflict mean the job has nothing left to do: the list was
// deleted, is no longer pending, or the provider rejected its prompt for good.
// ErrRateLimited is returned untouched together with the provider's budget so
// the caller can wait for the reset. Any other error is retryable.
func (l *lists) GenerateImages(ctx context.Context, listID domain.ListID, lastAttempt bool) (imagegen.RateLimitStatus, error) {
	list, err := l.storage.ListByID(ctx, listID)
	if err != nil {
		return imagegen.RateLimitStatus{}, fmt.Errorf("could not get list: %w", err)
	}
	if list == nil {
		return imagegen.RateLimitStatus{}, serrors.With(serrors.ErrConflict, "list was deleted")
	}
	if list.GenerationStatus != domain.GenerationStatusPending {
		return imagegen.RateLimitStatus{}, serrors.With(serrors.ErrConflict, "list is %s", list.GenerationStatus)
	}

	if _, err := l.storage.UpdateList(ctx, listID, storage.ListUpdates{IncrementAttempts: true}); err != nil {
		return imagegen.RateLimitStatus{}, fmt.Errorf("could not count attempt: %w", err)
	}

	prompt := list.Attributes.Prompt()
	images, rl, err := l.provider.Generate(ctx, imagegen.Request{Prompt: prompt, N: l.options.ImagesPerList})
	if err != nil {
		switch {
		case errors.Is(err, serrors.ErrRateLimited):
			return rl, err
		case errors.Is(err, serrors.ErrBadRequest):
			l.fail(ctx, listID, err)

			return rl, serrors.Wrap(serrors.ErrConflict, err, "provider rejected the prompt")
		case lastAttempt:
			l.fail(ctx, listID, err)
		}

		return rl, fmt.Errorf("could not generate images: %w", err)
	}

	rows := make([]domain.Image, 0, len(images))
	for _, img := range images {
		p := prompt
		if img.RevisedPrompt != "" {
			p = img.RevisedPrompt
		}
		rows = append(rows, domain.Image{
			UserID: list.UserID,
			ListID: listID,
			URL:    img.URL,
			Prompt: p,
		})
	}

	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.StoreImages(ctx, rows...); err != nil {
			return fmt.Errorf("could not store images: %w", err)
		}
		empty := ""
		updated, err := tx.UpdateList(ctx, listID, storage.ListUpdates{
			Status:    domain.GenerationStatusCompleted,
			LastError: &empty,
		})
		if err != nil {
			return fmt.Errorf("could not mark list completed: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "list was deleted")
		}

		return nil
	}); err != nil {
		return rl, err
	}

	l.metrics.Generated(ctx, len(rows))
	logger.Info(ctx, "images generated", zap.Int("count", len(rows)))

	return rl, nil
}

// New creates a Lists service. A nil metrics records nothing.
func New(storage storage.Storage, provider imagegen.Client, m *metrics.Instruments, options Options) Lists {
	if m == nil {
		m = metrics.Noop()
	}

	return &lists{
		options:  options,
		storage:  storage,
		provider: provider,
		metrics:  m,
	}
}
