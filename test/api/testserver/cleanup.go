//go:build api

package testserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// CleanupBetweenTests clears all data between tests. Call it at the start of
// each test function for isolation. Indexes survive; documents, cached
// claims, rate-limit counters and stored media do not.
func (ts *TestServer) CleanupBetweenTests(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, ts.MongoDB.ClearCollections(ctx), "failed to clear MongoDB collections")
	require.NoError(t, ts.Redis.FlushDB(ctx), "failed to flush Redis")
	require.NoError(t, ts.MinIO.ClearBucket(ctx), "failed to clear MinIO bucket")
}
