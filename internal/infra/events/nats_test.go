//go:build e2e

package events_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"table-reservation/internal/infra/events"

	"github.com/docker/go-connections/nat"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestNATSPublisher_Publish(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "nats:2.10-alpine",
			ExposedPorts: []string{"4222/tcp"},
			WaitingFor:   wait.ForListeningPort("4222/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, nat.Port("4222/tcp"))
	require.NoError(t, err)
	url := fmt.Sprintf("nats://%s:%s", host, port.Port())

	sub, err := nats.Connect(url)
	require.NoError(t, err)
	defer sub.Close()
	ch := make(chan *nats.Msg, 1)
	_, err = sub.ChanSubscribe("reservation.confirmed", ch)
	require.NoError(t, err)
	require.NoError(t, sub.Flush())

	pub, err := events.NewNATSPublisher(url, slog.Default())
	require.NoError(t, err)
	defer pub.Close()

	require.NoError(t, pub.Publish(ctx, "reservation.confirmed", []byte(`{"code":"RES-ABCD1234"}`)))

	select {
	case msg := <-ch:
		assert.JSONEq(t, `{"code":"RES-ABCD1234"}`, string(msg.Data))
	case <-time.After(5 * time.Second):
		t.Fatal("event not received")
	}
}
