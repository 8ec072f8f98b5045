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

// MinistryFields are the ministry fields that can be filtered or sorted on.
var MinistryFields = []string{"churchId", "name", "isActive", "createdAt", "updatedAt"}

//go:generate mockgen -destination=mocks/mock_ministry_repository.go -package=mocks ceslar/internal/repository MinistryRepository

// MinistryRepository defines the interface for ministry data operations.
type MinistryRepository interface {
	Create(ctx context.Context, ministry *models.Ministry) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ministry, error)
	Update(ctx context.Context, ministry *models.Ministry) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	Store() pagination.Store[models.Ministry]
}

type ministryRepository struct {
	collection *mongo.Collection
	store      *MongoStore[models.Ministry]
}

// NewMinistryRepository creates a new MinistryRepository.
func NewMinistryRepository(db *mongo.Database) MinistryRepository {
	collection := db.Collection(MinistriesCollection)
	return &ministryRepository{
		collection: collection,
		store:      NewMongoStore[models.Ministry](collection, MinistryFields, notDeleted),
	}
}

// Create inserts a new ministry.
func (r *ministryRepository) Create(ctx context.Context, ministry *models.Ministry) error {
	now := time.Now()
	ministry.ID = primitive.NewObjectID()
	ministry.CreatedAt = now
	ministry.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, ministry)
	return err
}

// FindByID retrieves a ministry by ID. Excludes soft-deleted ministries.
func (r *ministryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ministry, error) {
	var ministry models.Ministry
	err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}, notDeleted}).Decode(&ministry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMinistryNotFound
		}
		return nil, err
	}
	return &ministry, nil
}

// Update writes the editable fields of ministry.
func (r *ministryRepository) Update(ctx context.Context, ministry *models.Ministry) error {
	ministry.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":        ministry.Name,
			"description": ministry.Description,
			"leader":      ministry.Leader,
			"schedule":    ministry.Schedule,
			"imageKey":    ministry.ImageKey,
			"isActive":    ministry.IsActive,
			"updatedAt":   ministry.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: ministry.ID}, notDeleted}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrMinistryNotFound
	}
	return nil
}

// SoftDelete marks a ministry as deleted.
func (r *ministryRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, notDeleted},
		bson.M{"$set": bson.M{"deletedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrMinistryNotFound
	}
	return nil
}

// Store returns a paginated view of live ministries.
func (r *ministryRepository) Store() pagination.Store[models.Ministry] {
	return r.store
}
