// Package imagegen defines the contract with external text-to-image
// providers.
package imagegen

import (
	"context"
	"time"
)

// RateLimitStatus describes the request budget reported by the provider.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the window resets. Zero when the provider sent nothing.
}

// Request asks for N images rendered from Prompt.
type Request struct {
	Prompt string
	N      int
}

// Image is a single generated picture hosted by the provider.
type Image struct {
	URL string
	// RevisedPrompt is the prompt the provider actually used, if it rewrote it.
	RevisedPrompt string
}

// Client generates images. Implementations return serrors.ErrRateLimited when
// the provider throttled the call, serrors.ErrBadRequest when it rejected the
// prompt, and serrors.ErrUnavailable when it is known to be down.
//
//go:generate mockgen -package mockimagegen -source=interface.go -destination=mock/mockimagegen.go *
type Client interface {
	Generate(ctx context.Context, req Request) ([]Image, RateLimitStatus, error)
}
