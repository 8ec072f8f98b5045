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

// EventFields are the event fields that can be filtered or sorted on.
var EventFields = []string{"churchId", "title", "category", "published", "startsAt", "createdAt", "updatedAt"}

//go:generate mockgen -destination=mocks/mock_event_repository.go -package=mocks ceslar/internal/repository EventRepository

// EventRepository defines the interface for event data operations.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	CountPublished(ctx context.Context, churchID primitive.ObjectID) (int, error)
	Store() pagination.Store[models.Event]
}

type eventRepository struct {
	collection *mongo.Collection
	store      *MongoStore[models.Event]
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) EventRepository {
	collection := db.Collection(EventsCollection)
	return &eventRepository{
		collection: collection,
		store:      NewMongoStore[models.Event](collection, EventFields, notDeleted),
	}
}

// Create inserts a new event.
func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	now := time.Now()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// FindByID retrieves an event by ID. Excludes soft-deleted events.
func (r *eventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}, notDeleted}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Update writes the editable fields of event.
func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"title":       event.Title,
			"description": event.Description,
			"category":    event.Category,
			"location":    event.Location,
			"startsAt":    event.StartsAt,
			"endsAt":      event.EndsAt,
			"imageKey":    event.ImageKey,
			"published":   event.Published,
			"updatedAt":   event.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: event.ID}, notDeleted}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// SoftDelete marks an event as deleted.
func (r *eventRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, notDeleted},
		bson.M{"$set": bson.M{"deletedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// CountPublished returns the number of live published events of a church.
func (r *eventRepository) CountPublished(ctx context.Context, churchID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{
		{Key: "churchId", Value: churchID},
		{Key: "published", Value: true},
		notDeleted,
	})
	return int(count), err
}

// Store returns a paginated view of live events.
func (r *eventRepository) Store() pagination.Store[models.Event] {
	return r.store
}
