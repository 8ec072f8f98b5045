package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"ceslar/internal/config"
	"ceslar/internal/database"
	"ceslar/internal/repository"
	"ceslar/internal/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.SetupLogger(cfg.LogFormat, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		slog.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer mongoDB.Close()

	created, err := repository.EnsureIndexes(ctx, mongoDB.Database)
	if err != nil {
		slog.Error("index creation incomplete", "created", created, "total", len(repository.Indexes), "error", err)
		os.Exit(1)
	}

	slog.Info("indexes ready", "created", created)
}
