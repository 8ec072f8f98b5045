//go:build api

// Package testdb starts the backing services of the API suite in containers.
package testdb

import (
	"context"
	"time"

	"ceslar/internal/repository"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContainer wraps a MongoDB testcontainer for API tests.
type MongoContainer struct {
	Container *mongodb.MongoDBContainer
	URI       string
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupMongoDB starts a MongoDB testcontainer and creates the production
// indexes. The lifecycle is owned by TestMain, not by a single test.
func SetupMongoDB(ctx context.Context, dbName string) (*MongoContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return nil, err
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		_ = container.Terminate(ctx)
		return nil, err
	}

	database := client.Database(dbName)
	if _, err := repository.EnsureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(ctx)
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &MongoContainer{
		Container: container,
		URI:       uri,
		Client:    client,
		Database:  database,
	}, nil
}

// Ping satisfies handler.Pinger so the health endpoint can probe the container.
func (mc *MongoContainer) Ping(ctx context.Context) error {
	return mc.Client.Ping(ctx, nil)
}

// Cleanup terminates the MongoDB container.
func (mc *MongoContainer) Cleanup(ctx context.Context) error {
	if mc.Client != nil {
		_ = mc.Client.Disconnect(ctx)
	}
	if mc.Container != nil {
		return mc.Container.Terminate(ctx)
	}
	return nil
}

// ClearCollections deletes every document but keeps the collections, so
// unique indexes stay in force between tests.
func (mc *MongoContainer) ClearCollections(ctx context.Context) error {
	collections, err := mc.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}
	for _, collection := range collections {
		if _, err := mc.Database.Collection(collection).DeleteMany(ctx, bson.D{}); err != nil {
			return err
		}
	}
	return nil
}
