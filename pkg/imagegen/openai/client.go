// Package openai provides an imagegen.Client for providers that speak the
// OpenAI images API (POST /v1/images/generations).
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maike/pkg/imagegen"
	"maike/pkg/logger"
	"maike/pkg/serrors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Options configure the client.
type Options struct {
	// BaseURL is the API root, e.g. https://api.openai.com.
	BaseURL string
	// APIKey is sent as a bearer token.
	APIKey string
	// Model and Size are passed through to the provider.
	Model string
	Size  string
	// BreakerFailures is the number of consecutive failures that opens the
	// circuit. Zero means 5.
	BreakerFailures uint32
	// BreakerTimeout is how long the circuit stays open. Zero means 30s.
	BreakerTimeout time.Duration
}

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	options    Options
	breaker    *gobreaker.CircuitBreaker[[]imagegen.Image]
	now        func() time.Time
}

var _ imagegen.Client = (*Client)(nil)

// ParseRateLimit extracts the request budget from x-ratelimit-* headers. The
// reset header is a duration relative to now ("1s", "6m0s"). Missing headers
// yield a zero status.
func ParseRateLimit(h http.Header, now time.Time) imagegen.RateLimitStatus {
	atoi := func(s string) int {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}

		return 0
	}

	resetStr := h.Get("X-Ratelimit-Reset-Requests")
	if resetStr == "" {
		return imagegen.RateLimitStatus{}
	}
	reset, err := time.ParseDuration(resetStr)
	if err != nil {
		return imagegen.RateLimitStatus{}
	}

	return imagegen.RateLimitStatus{
		Limit:     atoi(h.Get("X-Ratelimit-Limit-Requests")),
		Remaining: atoi(h.Get("X-Ratelimit-Remaining-Requests")),
		ResetAt:   now.Add(reset),
	}
}

type generateReq struct {
	Model          string `json:"model,omitempty"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size,omitempty"`
	ResponseFormat string `json:"response_format"`
}

type generateRes struct {
	Data []struct {
		URL           string `json:"url"`
		RevisedPrompt string `json:"revised_prompt"`
	} `json:"data"`
}

type errorRes struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate requests req.N images. Calls go through a circuit breaker that
// only counts transport errors and 5xx responses as failures.
func (c *Client) Generate(ctx context.Context, req imagegen.Request) ([]imagegen.Image, imagegen.RateLimitStatus, error) {
	var rl imagegen.RateLimitStatus
	images, err := c.breaker.Execute(func() ([]imagegen.Image, error) {
		var err error
		var images []imagegen.Image
		images, rl, err = c.generate(ctx, req)

		return images, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, rl, serrors.Wrap(serrors.ErrUnavailable, err, "image provider unavailable")
	}

	return images, rl, err
}

func (c *Client) generate(ctx context.Context, req imagegen.Request) ([]imagegen.Image, imagegen.RateLimitStatus, error) {
	body, err := json.Marshal(generateReq{
		Model:          c.options.Model,
		Prompt:         req.Prompt,
		N:              req.N,
		Size:           c.options.Size,
		ResponseFormat: "url",
	})
	if err != nil {
		return nil, imagegen.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		strings.TrimRight(c.options.BaseURL, "/")+"/v1/images/generations",
		bytes.NewReader(body))
	if err != nil {
		return nil, imagegen.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.options.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, imagegen.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl := ParseRateLimit(resp.Header, c.now())
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rl, fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(b))
		var er errorRes
		if json.Unmarshal(b, &er) == nil && er.Error.Message != "" {
			msg = er.Error.Message
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			if rl.ResetAt.IsZero() {
				rl.ResetAt = c.now().Add(retryAfter(resp.Header))
			}

			return nil, rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", msg)
		case resp.StatusCode == http.StatusBadRequest:
			return nil, rl, serrors.With(serrors.ErrBadRequest, "prompt rejected: %s", msg)
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return nil, rl, serrors.With(serrors.ErrUnauthorized, "provider refused credentials: %s", msg)
		default:
			return nil, rl, fmt.Errorf("generation failed with status %d: %s", resp.StatusCode, msg)
		}
	}

	var res generateRes
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, rl, fmt.Errorf("could not decode response: %w", err)
	}

	images := make([]imagegen.Image, 0, len(res.Data))
	for _, d := range res.Data {
		if d.URL == "" {
			continue
		}
		images = append(images, imagegen.Image{URL: d.URL, RevisedPrompt: d.RevisedPrompt})
	}
	if len(images) == 0 {
		return nil, rl, errors.New("provider returned no image URLs")
	}

	return images, rl, nil
}

// retryAfter reads a Retry-After header given in seconds, defaulting to one
// second.
func retryAfter(h http.Header) time.Duration {
	if s, err := strconv.Atoi(h.Get("Retry-After")); err == nil && s > 0 {
		return time.Duration(s) * time.Second
	}

	return time.Second
}

// State reports the circuit breaker state.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client, options Options) *Client {
	failures := options.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	timeout := options.BreakerTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker[[]imagegen.Image](gobreaker.Settings{
		Name:    "imagegen",
		Timeout: timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			// provider answered; the request itself was at fault
			return err == nil ||
				errors.Is(err, serrors.ErrBadRequest) ||
				errors.Is(err, serrors.ErrRateLimited) ||
				errors.Is(err, serrors.ErrUnauthorized) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(context.Background(), "circuit breaker state change",
				zap.String("breaker", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to))
		},
	})

	return &Client{
		httpClient: httpClient,
		options:    options,
		breaker:    breaker,
		now:        time.Now,
	}
}
