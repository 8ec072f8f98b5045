package repository

import (
	"context"
	"errors"
	"time"

	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SermonFields are the sermon fields that can be filtered or sorted on.
var SermonFields = []string{"churchId", "title", "preacher", "series", "published", "date", "createdAt", "updatedAt"}

//go:generate mockgen -destination=mocks/mock_sermon_repository.go -package=mocks ceslar/internal/repository SermonRepository

// SermonRepository defines the interface for sermon data operations.
type SermonRepository interface {
	Create(ctx context.Context, sermon *models.Sermon) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Sermon, error)
	Update(ctx context.Context, sermon *models.Sermon) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	CountPublished(ctx context.Context, churchID primitive.ObjectID) (int, error)
	Store() pagination.Store[models.Sermon]
}

type sermonRepository struct {
	collection *mongo.Collection
	store      *MongoStore[models.Sermon]
}

// NewSermonRepository creates a new SermonRepository.
func NewSermonRepository(db *mongo.Database) SermonRepository {
	collection := db.Collection(SermonsCollection)
	return &sermonRepository{
		collection: collection,
		store:      NewMongoStore[models.Sermon](collection, SermonFields, notDeleted),
	}
}

// Create inserts a new sermon.
func (r *sermonRepository) Create(ctx context.Context, sermon *models.Sermon) error {
	now := time.Now()
	sermon.ID = primitive.NewObjectID()
	sermon.CreatedAt = now
	sermon.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, sermon)
	return err
}

// FindByID retrieves a sermon by ID. Excludes soft-deleted sermons.
func (r *sermonRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Sermon, error) {
	var sermon models.Sermon
	err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}, notDeleted}).Decode(&sermon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSermonNotFound
		}
		return nil, err
	}
	return &sermon, nil
}

// Update writes the editable fields of sermon.
func (r *sermonRepository) Update(ctx context.Context, sermon *models.Sermon) error {
	sermon.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"title":     sermon.Title,
			"preacher":  sermon.Preacher,
			"scripture": sermon.Scripture,
			"series":    sermon.Series,
			"summary":   sermon.Summary,
			"date":      sermon.Date,
			"mediaKey":  sermon.MediaKey,
			"published": sermon.Published,
			"updatedAt": sermon.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: sermon.ID}, notDeleted}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrSermonNotFound
	}
	return nil
}

// SoftDelete marks a sermon as deleted.
func (r *sermonRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, notDeleted},
		bson.M{"$set": bson.M{"deletedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrSermonNotFound
	}
	return nil
}

// CountPublished returns the number of live published sermons of a church.
func (r *sermonRepository) CountPublished(ctx context.Context, churchID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{
		{Key: "churchId", Value: churchID},
		{Key: "published", Value: true},
		notDeleted,
	})
	return int(count), err
}

// Store returns a paginated view of live sermons.
func (r *sermonRepository) Store() pagination.Store[models.Sermon] {
	return r.store
}
