package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrationsIsIdempotent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	version, err := RunMigrations(ctx, testDSN)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	version, err = RunMigrations(ctx, testDSN)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
