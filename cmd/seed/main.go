package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"ceslar/internal/authz"
	"ceslar/internal/config"
	"ceslar/internal/database"
	"ceslar/internal/models"
	"ceslar/internal/repository"
	"ceslar/internal/telemetry"
	"ceslar/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// seedUsers are created with the password "password123".
var seedUsers = []struct {
	email string
	name  string
	role  authz.SystemRole
	perms []authz.Permission
}{
	{"admin@ceslar.org", "Platform Admin", authz.SystemRoleAdmin, nil},
	{"pastor@iglesiacentral.org", "Juan Perez", authz.SystemRoleUser, nil},
	{"staff@iglesiacentral.org", "Ana Torres", authz.SystemRoleUser, nil},
	{"member@example.com", "Carlos Ruiz", authz.SystemRoleUser, nil},
	{"moderator@ceslar.org", "Lucia Gomez", authz.SystemRoleUser, []authz.Permission{authz.PermReadQuestions, authz.PermDeleteAll}},
}

func main() {
	cfg := config.Load()
	telemetry.SetupLogger(cfg.LogFormat, cfg.LogLevel)

	ctx := context.Background()

	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		slog.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer mongoDB.Close()

	db := mongoDB.Database
	for _, name := range []string{
		repository.UsersCollection,
		repository.ChurchesCollection,
		repository.MembershipsCollection,
		repository.EventsCollection,
		repository.SermonsCollection,
		repository.MinistriesCollection,
		repository.QuestionsCollection,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			fatal("clear collection", err, "collection", name)
		}
	}

	now := time.Now().UTC()
	users := insertUsers(ctx, db, now)
	churches := insertChurches(ctx, db, now)

	central := churches[0]
	insertMany(ctx, db, repository.MembershipsCollection, []any{
		membership(central, users[1], authz.RolePastor, models.MembershipActive, now),
		membership(central, users[2], authz.RoleStaff, models.MembershipActive, now),
		membership(central, users[3], authz.RoleMember, models.MembershipActive, now),
		membership(churches[1], users[3], authz.RoleMember, models.MembershipPending, now),
	})
	insertContent(ctx, db, central, users[1], now)
	insertMany(ctx, db, repository.QuestionsCollection, []any{
		models.Question{
			ID: primitive.NewObjectID(), ChurchID: &central,
			Name: "Maria", Email: "maria@example.com",
			Subject: "Baptism classes", Message: "When do the next baptism classes start?",
			Status: models.QuestionOpen, CreatedAt: now, UpdatedAt: now,
		},
		models.Question{
			ID:   primitive.NewObjectID(),
			Name: "Pedro", Email: "pedro@example.com",
			Subject: "Finding a church", Message: "Is there a congregation near Arequipa?",
			Status: models.QuestionOpen, CreatedAt: now, UpdatedAt: now,
		},
	})

	slog.Info("seed completed", "users", len(users), "churches", len(churches))
}

func insertUsers(ctx context.Context, db *mongo.Database, now time.Time) []primitive.ObjectID {
	password, err := auth.HashPassword("password123")
	if err != nil {
		fatal("hash password", err)
	}

	ids := make([]primitive.ObjectID, 0, len(seedUsers))
	docs := make([]any, 0, len(seedUsers))
	for i, u := range seedUsers {
		id := primitive.NewObjectIDFromTimestamp(now.Add(time.Duration(i) * time.Second))
		ids = append(ids, id)
		docs = append(docs, models.User{
			ID:          id,
			Email:       u.email,
			Password:    password,
			Name:        u.name,
			SystemRole:  u.role,
			Permissions: u.perms,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	insertMany(ctx, db, repository.UsersCollection, docs)
	return ids
}

func insertChurches(ctx context.Context, db *mongo.Database, now time.Time) []primitive.ObjectID {
	churches := []models.Church{
		{Name: "Iglesia Central", Slug: "iglesia-central", City: "Lima", Country: "PE", Address: "Av. Arequipa 123"},
		{Name: "Iglesia del Sur", Slug: "iglesia-del-sur", City: "Arequipa", Country: "PE"},
		{Name: "Comunidad Norte", Slug: "comunidad-norte", City: "Trujillo", Country: "PE"},
	}

	ids := make([]primitive.ObjectID, 0, len(churches))
	docs := make([]any, 0, len(churches))
	for i := range churches {
		churches[i].ID = primitive.NewObjectID()
		churches[i].IsActive = true
		churches[i].CreatedAt = now.Add(-time.Duration(i) * time.Hour)
		churches[i].UpdatedAt = churches[i].CreatedAt
		ids = append(ids, churches[i].ID)
		docs = append(docs, churches[i])
	}
	insertMany(ctx, db, repository.ChurchesCollection, docs)
	return ids
}

func insertContent(ctx context.Context, db *mongo.Database, churchID, author primitive.ObjectID, now time.Time) {
	insertMany(ctx, db, repository.EventsCollection, []any{
		models.Event{
			ID: primitive.NewObjectID(), ChurchID: churchID, CreatedBy: author,
			Title: "Youth Night", Category: "youth", Location: "Main hall",
			StartsAt: now.Add(72 * time.Hour), Published: true, CreatedAt: now, UpdatedAt: now,
		},
		models.Event{
			ID: primitive.NewObjectID(), ChurchID: churchID, CreatedBy: author,
			Title: "Easter Retreat", Category: "retreat",
			StartsAt: now.Add(30 * 24 * time.Hour), Published: false, CreatedAt: now, UpdatedAt: now,
		},
	})

	sermons := make([]any, 0, 4)
	for i, title := range []string{"The Good Shepherd", "The Bread of Life", "The Light of the World", "The True Vine"} {
		date := now.AddDate(0, 0, -7*(i+1))
		sermons = append(sermons, models.Sermon{
			ID: primitive.NewObjectID(), ChurchID: churchID, CreatedBy: author,
			Title: title, Preacher: "Pr. Juan Perez", Series: "I Am",
			Date: date, Published: true, CreatedAt: date, UpdatedAt: date,
		})
	}
	insertMany(ctx, db, repository.SermonsCollection, sermons)

	insertMany(ctx, db, repository.MinistriesCollection, []any{
		models.Ministry{
			ID: primitive.NewObjectID(), ChurchID: churchID, CreatedBy: author,
			Name: "Worship Team", Leader: "Ana Torres", Schedule: "Thursdays 7pm",
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		},
		models.Ministry{
			ID: primitive.NewObjectID(), ChurchID: churchID, CreatedBy: author,
			Name: "Prison Outreach", IsActive: false, CreatedAt: now, UpdatedAt: now,
		},
	})
}

func membership(churchID, userID primitive.ObjectID, role authz.ChurchRole, status models.MembershipStatus, now time.Time) models.Membership {
	return models.Membership{
		ID:        primitive.NewObjectID(),
		ChurchID:  churchID,
		UserID:    userID,
		Role:      role,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func insertMany(ctx context.Context, db *mongo.Database, collection string, docs []any) {
	result, err := db.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		fatal("seed collection", err, "collection", collection)
	}
	slog.Info("seeded", "collection", collection, "count", len(result.InsertedIDs))
}

func fatal(msg string, err error, args ...any) {
	slog.Error(msg, append(args, "error", err)...)
	os.Exit(1)
}
