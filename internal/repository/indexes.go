package repository

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection       = "users"
	ChurchesCollection    = "churches"
	EventsCollection      = "events"
	SermonsCollection     = "sermons"
	MinistriesCollection  = "ministries"
	MembershipsCollection = "memberships"
	QuestionsCollection   = "questions"
)

// Index describes one index on a collection.
type Index struct {
	Collection string
	Keys       bson.D
	Unique     bool
}

// Indexes backs the unique constraints, the default createdAt ordering with
// its _id tiebreaker, and the filters the list endpoints expose.
var Indexes = []Index{
	{Collection: UsersCollection, Keys: bson.D{{Key: "email", Value: 1}}, Unique: true},
	{Collection: UsersCollection, Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},

	{Collection: ChurchesCollection, Keys: bson.D{{Key: "slug", Value: 1}}, Unique: true},
	{Collection: ChurchesCollection, Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
	{Collection: ChurchesCollection, Keys: bson.D{{Key: "city", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Collection: ChurchesCollection, Keys: bson.D{{Key: "country", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Collection: ChurchesCollection, Keys: bson.D{{Key: "name", Value: 1}}},

	{Collection: EventsCollection, Keys: bson.D{{Key: "churchId", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
	{Collection: EventsCollection, Keys: bson.D{{Key: "churchId", Value: 1}, {Key: "startsAt", Value: 1}}},
	{Collection: EventsCollection, Keys: bson.D{{Key: "published", Value: 1}, {Key: "createdAt", Value: -1}}},

	{Collection: SermonsCollection, Keys: bson.D{{Key: "churchId", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
	{Collection: SermonsCollection, Keys: bson.D{{Key: "churchId", Value: 1}, {Key: "date", Value: -1}}},
	{Collection: SermonsCollection, Keys: bson.D{{Key: "preacher", Value: 1}}},

	{Collection: MinistriesCollection, Keys: bson.D{{Key: "churchId", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},

	{Collection: MembershipsCollection, Keys: bson.D{{Key: "churchId", Value: 1}, {Key: "userId", Value: 1}}, Unique: true},
	{Collection: MembershipsCollection, Keys: bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}}},
	{Collection: MembershipsCollection, Keys: bson.D{{Key: "churchId", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},

	{Collection: QuestionsCollection, Keys: bson.D{{Key: "churchId", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Collection: QuestionsCollection, Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
}

// EnsureIndexes creates every index in Indexes. Failures are logged and
// counted; the first error is returned after all indexes were attempted.
func EnsureIndexes(ctx context.Context, db *mongo.Database) (int, error) {
	var (
		created  int
		firstErr error
	)
	for _, idx := range Indexes {
		model := mongo.IndexModel{Keys: idx.Keys}
		if idx.Unique {
			model.Options = options.Index().SetUnique(true)
		}

		name, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			slog.WarnContext(ctx, "failed to create index", "collection", idx.Collection, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		created++
		slog.InfoContext(ctx, "index ready", "collection", idx.Collection, "name", name)
	}
	return created, firstErr
}
