package controller

import (
	"context"
	"net/http"
	"time"
)

// WithTimeout returns a middleware that puts a deadline of d on the request
// context. Handlers keep writing the response themselves, so a blocked call
// returning context.DeadlineExceeded is answered by the handler's own error
// mapping and streamed responses are not buffered. A non-positive d disables
// the deadline.
func WithTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
