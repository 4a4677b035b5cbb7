package postpilot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgresPostLog(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("postpilot"),
		postgres.WithUsername("postpilot"),
		postgres.WithPassword("postpilot"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, testcontainers.TerminateContainer(container))
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	log, err := NewPostgresPostLog(connStr)
	require.NoError(t, err)
	defer log.Close()

	for i := 0; i < 3; i++ {
		require.NoError(t, log.Append(ctx, testRecord(i)))
	}

	records, err := log.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, r := range records {
		require.True(t, testRecord(i).Timestamp.Equal(r.Timestamp))
		require.Equal(t, testRecord(i).Caption, r.Caption)
	}
}
