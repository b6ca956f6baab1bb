//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	c := NewRedisCache(host+":"+port.Port(), "", 0)
	defer c.Close()
	require.NoError(t, c.Ping(ctx))

	_, ok := c.Get(ctx, Key("absent"))
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, Key("years=1"), `{"years":1}`, time.Minute))
	got, ok := c.Get(ctx, Key("years=1"))
	assert.True(t, ok)
	assert.Equal(t, `{"years":1}`, got)

	require.NoError(t, c.Set(ctx, Key("short"), "x", 50*time.Millisecond))
	time.Sleep(200 * time.Millisecond)
	_, ok = c.Get(ctx, Key("short"))
	assert.False(t, ok)
}
