//go:build e2e

package confirmation_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"table-reservation/internal/infra/confirmation"
	"table-reservation/internal/pkg/config"
	"table-reservation/internal/pkg/errs"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = c.Terminate(context.Background())
	})

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, nat.Port("6379/tcp"))
	require.NoError(t, err)
	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client, err := confirmation.NewRedisClient(config.ConfirmationConfig{RedisURL: startRedis(t)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := confirmation.NewRedisStore(client)
	require.NoError(t, store.Ping(ctx))

	t.Run("take returns the entry once", func(t *testing.T) {
		pc := samplePending()
		require.NoError(t, store.Put(ctx, "tok-once", pc, time.Minute))

		got, err := store.Take(ctx, "tok-once")
		require.NoError(t, err)
		assert.Equal(t, pc, *got)

		_, err = store.Take(ctx, "tok-once")
		assert.ErrorIs(t, err, errs.ErrConfirmationNotFound)
	})

	t.Run("expired entry is gone", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "tok-ttl", samplePending(), time.Second))
		time.Sleep(1500 * time.Millisecond)

		_, err := store.Take(ctx, "tok-ttl")
		assert.ErrorIs(t, err, errs.ErrConfirmationNotFound)
	})
}
