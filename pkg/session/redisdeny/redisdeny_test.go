package redisdeny_test

import (
	"context"
	"fmt"
	"maike/pkg/session/redisdeny"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupDenylist(t *testing.T) (*redisdeny.Denylist, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	d, err := redisdeny.New(ctx, redisdeny.Options{
		Addr:      fmt.Sprintf("%s:%d", host, port.Int()),
		KeyPrefix: "test:revoked:",
	})
	require.NoError(t, err)

	return d, func() {
		_ = d.Close()
		_ = container.Terminate(ctx)
	}
}

func TestDenylist(t *testing.T) {
	d, cleanup := setupDenylist(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, d.Ping(ctx))

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))
	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)

	// expired tokens are not stored
	require.NoError(t, d.Revoke(ctx, "jti-2", time.Now().Add(-time.Minute)))
	revoked, err = d.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	require.False(t, revoked)

	// entries vanish with the token
	require.NoError(t, d.Revoke(ctx, "jti-3", time.Now().Add(1500*time.Millisecond)))
	require.Eventually(t, func() bool {
		revoked, err := d.IsRevoked(ctx, "jti-3")

		return err == nil && !revoked
	}, 5*time.Second, 100*time.Millisecond)
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := redisdeny.New(ctx, redisdeny.Options{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}
