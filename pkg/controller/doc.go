// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the allowed origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithDuration: Observes request latency in a Prometheus histogram.
//   - WithTimeout: Puts a deadline on the request context.
//   - RateLimiter.Handler: Throttles requests per client IP.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
