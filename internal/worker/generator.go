package worker

import (
	"context"
	"errors"
	"fmt"
	"maike/internal/lists"
	"maike/pkg/domain"
	"maike/pkg/imagegen"
	"maike/pkg/logger"
	"maike/pkg/metrics"
	"maike/pkg/serrors"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const (
	// bootstrapLimit is the budget assumed before the provider reported one.
	bootstrapLimit = 1
	// minReserveWait keeps reserveRL from spinning on a reset that already
	// passed.
	minReserveWait = 50 * time.Millisecond
)

// GeneratorWorker is a River worker that generates the images of a list through
// lists.Lists. It embeds River's WorkerDefaults to integrate with the job
// runtime and provides its own cooperative rate limiting so concurrent jobs
// never exceed the provider's request budget.
//
// # Rate limiting overview
//
// The worker tracks the last known provider rate-limit status (lastRLStatus) and
// the number of provider calls in flight (inFlightRequests). Before a call,
// reserveRL reserves a slot from the current budget. The effective remaining
// budget is:
//
//	remaining := lastRLStatus.Remaining
//	if now > lastRLStatus.ResetAt { remaining = lastRLStatus.Limit }
//
// A call may start if remaining - inFlightRequests > 0. Otherwise reserveRL
// waits until ResetAt or until another call finishes and signals
// requestFinishedChan.
//
// requestFinished merges the status reported by each call: a new ResetAt is
// always adopted, within the same window only a lower Remaining is. A status
// without a limit (429 with Retry-After only) keeps the last known limit.
//
// Bootstrap: before any call has reported a status, lastRLStatus is a
// synthetic Limit=1, Remaining=1 status with a far-future ResetAt, so exactly
// one call goes out to learn the real budget.
//
// Outcomes: conflict and not-found errors cancel the job, provider rate
// limiting snoozes it until ResetAt, other errors are returned so River
// retries them. On the last attempt the list is marked FAILED before the error
// is returned.
type GeneratorWorker struct {
	river.WorkerDefaults[lists.JobArgs]

	lists   lists.Lists
	metrics *metrics.Instruments
	timeout time.Duration

	// mu protects inFlightRequests and lastRLStatus.
	mu               sync.Mutex
	inFlightRequests int
	lastRLStatus     *imagegen.RateLimitStatus
	// requestFinishedChan wakes goroutines waiting in reserveRL.
	requestFinishedChan chan struct{}
}

// NewGeneratorWorker constructs a GeneratorWorker. A zero timeout keeps River's
// default job timeout and a nil metrics records nothing.
func NewGeneratorWorker(lists lists.Lists, m *metrics.Instruments, timeout time.Duration) *GeneratorWorker {
	if m == nil {
		m = metrics.Noop()
	}

	return &GeneratorWorker{
		lists:               lists,
		metrics:             m,
		timeout:             timeout,
		requestFinishedChan: make(chan struct{}),
	}
}

// Timeout bounds a single job run.
func (g *GeneratorWorker) Timeout(job *river.Job[lists.JobArgs]) time.Duration {
	if g.timeout > 0 {
		return g.timeout
	}

	return g.WorkerDefaults.Timeout(job)
}

// Work runs one generation attempt for the job's list.
func (g *GeneratorWorker) Work(ctx context.Context, job *river.Job[lists.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("listID", job.Args.ListID),
		zap.Int("attempt", job.Attempt))

	lastAttempt := job.MaxAttempts > 0 && job.Attempt >= job.MaxAttempts

	if err := g.reserveRL(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))
		err = fmt.Errorf("could not reserve rate limit: %w", err)
		if lastAttempt {
			g.markFailed(ctx, job.Args.ListID, err)
			g.metrics.GenerationJob(ctx, "failed")
		} else {
			g.metrics.GenerationJob(ctx, "retry")
		}

		return err
	}

	RLStatus, err := g.lists.GenerateImages(ctx, job.Args.ListID, lastAttempt)
	g.requestFinished(ctx, RLStatus)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) || errors.Is(err, serrors.ErrNotFound) {
			logger.Info(ctx, "generation cancelled", zap.Error(err))
			g.metrics.GenerationJob(ctx, "cancelled")

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in generating images", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			g.metrics.GenerationJob(ctx, "snoozed")

			return river.JobSnooze(max(time.Until(RLStatus.ResetAt), 0)) //nolint: wrapcheck
		}

		if lastAttempt {
			g.markFailed(ctx, job.Args.ListID, err)
			g.metrics.GenerationJob(ctx, "failed")
		} else {
			g.metrics.GenerationJob(ctx, "retry")
		}

		return fmt.Errorf("could not generate images: %w", err)
	}

	g.metrics.GenerationJob(ctx, "completed")
	logger.Info(ctx, "images generated successfully")

	return nil
}

// markFailed records the final error on the list. River discards the job after
// this attempt, so the list must not stay PENDING.
func (g *GeneratorWorker) markFailed(ctx context.Context, listID domain.ListID, cause error) {
	if err := g.lists.MarkFailed(ctx, listID, cause); err != nil {
		logger.Error(ctx, "could not mark list failed", zap.Error(err))
	}
}

// requestFinished is called after every provider call. It decrements the
// in-flight counter, wakes one waiter and merges the reported status.
func (g *GeneratorWorker) requestFinished(ctx context.Context, newRLStatus imagegen.RateLimitStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inFlightRequests > 0 {
		g.inFlightRequests--
	}

	select {
	case g.requestFinishedChan <- struct{}{}:
	default:
	}

	// no rate limit info, keep our view
	if newRLStatus.ResetAt.IsZero() {
		return
	}

	// a 429 with only Retry-After carries no limit; keep the known one so the
	// budget refills after the reset
	if newRLStatus.Limit <= 0 {
		newRLStatus.Limit = bootstrapLimit
		if g.lastRLStatus != nil && g.lastRLStatus.Limit > 0 {
			newRLStatus.Limit = g.lastRLStatus.Limit
		}
	}
	newRLStatus.Remaining = min(max(newRLStatus.Remaining, 0), newRLStatus.Limit)

	if g.lastRLStatus == nil ||
		!g.lastRLStatus.ResetAt.Equal(newRLStatus.ResetAt) ||
		newRLStatus.Remaining < g.lastRLStatus.Remaining {
		g.lastRLStatus = &newRLStatus
		logger.Debug(ctx, "received rate limit status",
			zap.Int("limit", newRLStatus.Limit),
			zap.Int("remaining", newRLStatus.Remaining),
			zap.Time("resetAt", newRLStatus.ResetAt),
			zap.Int("inFlight", g.inFlightRequests))
	}
}

// reserveRL reserves one unit of provider budget or blocks until one becomes
// available. It returns an error if ctx is done while waiting.
func (g *GeneratorWorker) reserveRL(ctx context.Context) error {
	for {
		g.mu.Lock()

		if g.lastRLStatus == nil {
			g.lastRLStatus = &imagegen.RateLimitStatus{
				Limit:     bootstrapLimit,
				Remaining: bootstrapLimit,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := g.lastRLStatus.Remaining
		if time.Now().After(g.lastRLStatus.ResetAt) {
			remaining = g.lastRLStatus.Limit
		}

		if remaining-g.inFlightRequests > 0 {
			g.inFlightRequests++
			g.mu.Unlock()

			return nil
		}

		resetAt := g.lastRLStatus.ResetAt
		inFlight := g.inFlightRequests
		g.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		timer := time.NewTimer(max(time.Until(resetAt), minReserveWait))
		select {
		case <-ctx.Done():
			timer.Stop()

			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-g.requestFinishedChan:
			timer.Stop()
		case <-timer.C:
		}
	}
}
