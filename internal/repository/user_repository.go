package repository

import (
	"context"
	"errors"
	"time"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserFields are the user fields that can be filtered or sorted on.
var UserFields = []string{"email", "name", "systemRole", "createdAt", "updatedAt"}

//go:generate mockgen -destination=mocks/mock_user_repository.go -package=mocks ceslar/internal/repository UserRepository

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	UpdateAccess(ctx context.Context, id primitive.ObjectID, role authz.SystemRole, perms []authz.Permission) (*models.User, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	Store() pagination.Store[models.User]
	authz.ProfileSource
}

// userRepository implements UserRepository using MongoDB.
type userRepository struct {
	collection *mongo.Collection
	store      *MongoStore[models.User]
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *mongo.Database) UserRepository {
	collection := db.Collection(UsersCollection)
	return &userRepository{
		collection: collection,
		store:      NewMongoStore[models.User](collection, UserFields, notDeleted),
	}
}

// Create inserts a new user. Emails are unique.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if existing, _ := r.FindByEmail(ctx, user.Email); existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.SystemRole == "" {
		user.SystemRole = authz.SystemRoleUser
	}
	if user.Permissions == nil {
		user.Permissions = []authz.Permission{}
	}

	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrUserAlreadyExists
	}
	return err
}

// FindByID finds a live user by ID.
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}, notDeleted})
}

// FindByEmail finds a live user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}, notDeleted})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.D) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update applies the non-nil profile fields and returns the updated user.
func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}

	if update.Email != nil {
		existing, _ := r.FindByEmail(ctx, *update.Email)
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrUserAlreadyExists
		}
		set["email"] = *update.Email
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}

	return r.findOneAndSet(ctx, id, set)
}

// UpdateAccess replaces a user's system role and permissions.
func (r *userRepository) UpdateAccess(ctx context.Context, id primitive.ObjectID, role authz.SystemRole, perms []authz.Permission) (*models.User, error) {
	if perms == nil {
		perms = []authz.Permission{}
	}
	return r.findOneAndSet(ctx, id, bson.M{
		"systemRole":  role,
		"permissions": perms,
		"updatedAt":   time.Now(),
	})
}

func (r *userRepository) findOneAndSet(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.collection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, notDeleted},
		bson.M{"$set": set},
		opts,
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, err
	}
	return &user, nil
}

// SoftDelete marks a user as deleted.
func (r *userRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, notDeleted},
		bson.M{"$set": bson.M{"deletedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Store returns a paginated view of live users.
func (r *userRepository) Store() pagination.Store[models.User] {
	return r.store
}

// AccessProfile implements authz.ProfileSource.
func (r *userRepository) AccessProfile(ctx context.Context, uid string) (*authz.AccessProfile, error) {
	id, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &authz.AccessProfile{
		SystemRole:  user.SystemRole,
		Permissions: user.Permissions,
	}, nil
}
