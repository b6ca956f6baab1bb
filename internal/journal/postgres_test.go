//go:build integration

package journal

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var postgresDSN string

func TestMain(m *testing.M) {
	os.Exit(runWithPostgres(m))
}

func runWithPostgres(m *testing.M) int {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpassword",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Printf("could not start postgres container: %s", err)
		return 1
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("could not stop postgres container: %s", err)
		}
	}()

	host, err := container.Host(ctx)
	if err != nil {
		log.Printf("could not get container host: %s", err)
		return 1
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		log.Printf("could not get mapped port: %s", err)
		return 1
	}

	postgresDSN = "postgres://testuser:testpassword@" + host + ":" + port.Port() + "/testdb"
	return m.Run()
}

func newTestPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	ctx := context.Background()
	store, err := NewPostgresStore(ctx, postgresDSN)
	require.NoError(t, err)
	_, err = store.Pool.Exec(ctx, "TRUNCATE TABLE runs")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPostgresStore_SaveAndGet(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()

	run := NewRun("price=1500000&years=1", sampleResult("Base", true))
	require.NoError(t, store.SaveRun(ctx, run))

	got, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Name, got.Name)
	assert.Equal(t, run.Query, got.Query)
	assert.Equal(t, "228212.71", got.FinalBuyNetWorth.StringFixed(2))
	assert.Equal(t, "446945.02", got.FinalRentNetWorth.StringFixed(2))
	require.NotNil(t, got.CrossoverYear)
	assert.Equal(t, "3.5586", got.CrossoverYear.StringFixed(4))
	require.Len(t, got.Records, 2)
}

func TestPostgresStore_NotFound(t *testing.T) {
	store := newTestPostgresStore(t)

	_, err := store.GetRun(context.Background(), "01JNOTAREALRUNID0000000000")
	assert.True(t, errors.Is(err, ErrRunNotFound))
}

func TestPostgresStore_List(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, store.SaveRun(ctx, NewRun("years=1", sampleResult(name, false))))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].Name)
	assert.Nil(t, runs[0].CrossoverYear)
}
