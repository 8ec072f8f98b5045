package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ChurchFields are the church fields that can be filtered or sorted on.
var ChurchFields = []string{"name", "slug", "city", "country", "isActive", "createdAt", "updatedAt", "stats.members"}

//go:generate mockgen -destination=mocks/mock_church_repository.go -package=mocks ceslar/internal/repository ChurchRepository

// ChurchRepository defines the interface for church data operations.
type ChurchRepository interface {
	Create(ctx context.Context, church *models.Church) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Church, error)
	FindBySlug(ctx context.Context, slug string) (*models.Church, error)
	Update(ctx context.Context, church *models.Church) error
	UpdateStats(ctx context.Context, id primitive.ObjectID, stats models.ChurchStats) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	// Store returns a paginated view of live churches, narrowed to names
	// starting with search (case-insensitive) when search is not empty.
	Store(search string) pagination.Store[models.Church]
}

// churchRepository implements ChurchRepository using MongoDB.
type churchRepository struct {
	collection *mongo.Collection
	store      *MongoStore[models.Church]
}

// NewChurchRepository creates a new ChurchRepository.
func NewChurchRepository(db *mongo.Database) ChurchRepository {
	collection := db.Collection(ChurchesCollection)
	return &churchRepository{
		collection: collection,
		store:      NewMongoStore[models.Church](collection, ChurchFields, notDeleted),
	}
}

// Create inserts a new church. The slug must be unique among live churches.
func (r *churchRepository) Create(ctx context.Context, church *models.Church) error {
	if existing, err := r.FindBySlug(ctx, church.Slug); err == nil && existing != nil {
		return apperrors.ErrChurchSlugTaken
	}

	now := time.Now()
	church.ID = primitive.NewObjectID()
	church.CreatedAt = now
	church.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, church)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrChurchSlugTaken
	}
	return err
}

// FindByID retrieves a church by ID. Excludes soft-deleted churches.
func (r *churchRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Church, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}, notDeleted})
}

// FindBySlug retrieves a church by slug. Excludes soft-deleted churches.
func (r *churchRepository) FindBySlug(ctx context.Context, slug string) (*models.Church, error) {
	return r.findOne(ctx, bson.D{{Key: "slug", Value: slug}, notDeleted})
}

func (r *churchRepository) findOne(ctx context.Context, filter bson.D) (*models.Church, error) {
	var church models.Church
	err := r.collection.FindOne(ctx, filter).Decode(&church)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrChurchNotFound
		}
		return nil, err
	}
	return &church, nil
}

// Update writes the editable fields of church.
func (r *churchRepository) Update(ctx context.Context, church *models.Church) error {
	if existing, err := r.FindBySlug(ctx, church.Slug); err == nil && existing.ID != church.ID {
		return apperrors.ErrChurchSlugTaken
	}

	church.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":        church.Name,
			"slug":        church.Slug,
			"description": church.Description,
			"address":     church.Address,
			"city":        church.City,
			"country":     church.Country,
			"phone":       church.Phone,
			"email":       church.Email,
			"website":     church.Website,
			"logoKey":     church.LogoKey,
			"isActive":    church.IsActive,
			"updatedAt":   church.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: church.ID}, notDeleted}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrChurchSlugTaken
		}
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrChurchNotFound
	}
	return nil
}

// UpdateStats overwrites the denormalized counters of a church.
func (r *churchRepository) UpdateStats(ctx context.Context, id primitive.ObjectID, stats models.ChurchStats) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, notDeleted},
		bson.M{"$set": bson.M{"stats": stats}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrChurchNotFound
	}
	return nil
}

// SoftDelete marks a church as deleted.
func (r *churchRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now()
	result, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, notDeleted},
		bson.M{"$set": bson.M{"deletedAt": now, "isActive": false, "updatedAt": now}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrChurchNotFound
	}
	return nil
}

// Store implements ChurchRepository.
func (r *churchRepository) Store(search string) pagination.Store[models.Church] {
	if search == "" {
		return r.store
	}
	return r.store.Where(bson.E{Key: "name", Value: primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(search),
		Options: "i",
	}})
}
