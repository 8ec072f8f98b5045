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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionFields are the question fields that can be filtered or sorted on.
var QuestionFields = []string{"churchId", "status", "email", "createdAt", "updatedAt"}

//go:generate mockgen -destination=mocks/mock_question_repository.go -package=mocks ceslar/internal/repository QuestionRepository

// QuestionRepository defines the interface for contact-form questions.
type QuestionRepository interface {
	Create(ctx context.Context, q *models.Question) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error)
	Answer(ctx context.Context, id primitive.ObjectID, answer string, by primitive.ObjectID) (*models.Question, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Store() pagination.Store[models.Question]
}

type questionRepository struct {
	collection *mongo.Collection
	store      *MongoStore[models.Question]
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(db *mongo.Database) QuestionRepository {
	collection := db.Collection(QuestionsCollection)
	return &questionRepository{
		collection: collection,
		store:      NewMongoStore[models.Question](collection, QuestionFields),
	}
}

// Create inserts a new open question.
func (r *questionRepository) Create(ctx context.Context, q *models.Question) error {
	now := time.Now()
	q.ID = primitive.NewObjectID()
	q.Status = models.QuestionOpen
	q.CreatedAt = now
	q.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, q)
	return err
}

// FindByID retrieves a question by ID.
func (r *questionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error) {
	var q models.Question
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

// Answer records an answer and marks the question answered.
func (r *questionRepository) Answer(ctx context.Context, id primitive.ObjectID, answer string, by primitive.ObjectID) (*models.Question, error) {
	now := time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var q models.Question
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"answer":     answer,
			"answeredBy": by,
			"answeredAt": now,
			"status":     models.QuestionAnswered,
			"updatedAt":  now,
		}},
		opts,
	).Decode(&q)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

// Delete removes a question.
func (r *questionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrQuestionNotFound
	}
	return nil
}

// Store returns a paginated view of questions.
func (r *questionRepository) Store() pagination.Store[models.Question] {
	return r.store
}
