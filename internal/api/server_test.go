package api_test

import (
	"context"
	"errors"
	"maike/internal/api"
	"maike/internal/api/handler/v1handler"
	"maike/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

// blockingPinger waits until the request context is done.
type blockingPinger struct{}

func (blockingPinger) Ping(ctx context.Context) error {
	<-ctx.Done()

	return ctx.Err()
}

func newRouter(t *testing.T, opts api.Options) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	h, err := api.NewRouter(api.Deps{
		Deps:       v1handler.Deps{Health: pinger{}},
		Registerer: reg,
		Gatherer:   reg,
	}, opts)
	require.NoError(t, err)

	return h
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	h := newRouter(t, api.Options{MetricsPath: "/metrics", RequestTimeout: time.Second})

	rec := get(h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "maike_http_request_duration_seconds")
}

func TestRouter_RequestTimeout(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := api.NewRouter(api.Deps{
		Deps:       v1handler.Deps{Health: blockingPinger{}},
		Registerer: reg,
		Gatherer:   reg,
	}, api.Options{RequestTimeout: 50 * time.Millisecond})
	require.NoError(t, err)

	rec := get(h, "/health")
	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"code":"TIMEOUT","message":"request timed out","statusCode":504}`, rec.Body.String())
}

func TestRouter_Spec(t *testing.T) {
	h := newRouter(t, api.Options{})

	rec := get(h, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	rec = get(h, "/docs/")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Pprof(t *testing.T) {
	require.Equal(t, http.StatusNotFound, get(newRouter(t, api.Options{}), "/debug/pprof/").Code)
	require.Equal(t, http.StatusOK, get(newRouter(t, api.Options{EnablePprof: true}), "/debug/pprof/").Code)
}

func TestRouter_CORS(t *testing.T) {
	h := newRouter(t, api.Options{AllowedOrigins: []string{"https://maike.example"}})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://maike.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "https://maike.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	deps := api.Deps{Registerer: reg, Gatherer: reg}

	_, err := api.NewRouter(deps, api.Options{})
	require.NoError(t, err)

	_, err = api.NewRouter(deps, api.Options{})
	require.Error(t, err)

	var are prometheus.AlreadyRegisteredError
	require.True(t, errors.As(err, &are))
}
