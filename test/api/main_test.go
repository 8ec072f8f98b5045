//go:build api

// Package api exercises the CESLAR HTTP surface end to end against MongoDB,
// Redis and MinIO containers.
//
//	go test -tags=api ./test/api/...
package api

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"ceslar/internal/validator"
	"ceslar/test/api/testserver"
)

// testServer is shared by every test in the package; tests reset its state
// with CleanupBetweenTests.
var testServer *testserver.TestServer

func TestMain(m *testing.M) {
	validator.RegisterCustomValidators()

	ctx := context.Background()
	slog.Info("starting containers for the API suite")

	ts, err := testserver.New(ctx)
	if err != nil {
		slog.Error("test server setup failed", "error", err)
		os.Exit(1)
	}
	testServer = ts

	code := m.Run()

	testServer.Cleanup(ctx)
	os.Exit(code)
}
