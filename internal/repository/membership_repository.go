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

// MembershipFields are the membership fields that can be filtered or sorted on.
var MembershipFields = []string{"churchId", "userId", "role", "status", "createdAt", "updatedAt"}

//go:generate mockgen -destination=mocks/mock_membership_repository.go -package=mocks ceslar/internal/repository MembershipRepository

// MembershipRepository defines the interface for membership data operations.
type MembershipRepository interface {
	Create(ctx context.Context, m *models.Membership) error
	FindByChurchAndUser(ctx context.Context, churchID, userID primitive.ObjectID) (*models.Membership, error)
	Update(ctx context.Context, churchID, userID primitive.ObjectID, role *authz.ChurchRole, status *models.MembershipStatus) (*models.Membership, error)
	Delete(ctx context.Context, churchID, userID primitive.ObjectID) error
	CountActive(ctx context.Context, churchID primitive.ObjectID) (int, error)
	// Store returns a paginated view of the members of one church.
	Store(churchID primitive.ObjectID) pagination.Store[models.Membership]
	authz.RoleSource
}

type membershipRepository struct {
	collection *mongo.Collection
	store      *MongoStore[models.Membership]
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(db *mongo.Database) MembershipRepository {
	collection := db.Collection(MembershipsCollection)
	return &membershipRepository{
		collection: collection,
		store:      NewMongoStore[models.Membership](collection, MembershipFields),
	}
}

// Create inserts a membership. A user holds at most one membership per church.
func (r *membershipRepository) Create(ctx context.Context, m *models.Membership) error {
	if existing, _ := r.FindByChurchAndUser(ctx, m.ChurchID, m.UserID); existing != nil {
		return apperrors.ErrAlreadyMember
	}

	now := time.Now()
	m.ID = primitive.NewObjectID()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, m)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrAlreadyMember
	}
	return err
}

// FindByChurchAndUser returns the membership of userID in churchID.
func (r *membershipRepository) FindByChurchAndUser(ctx context.Context, churchID, userID primitive.ObjectID) (*models.Membership, error) {
	var m models.Membership
	err := r.collection.FindOne(ctx, bson.M{"churchId": churchID, "userId": userID}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Update changes the role and/or status of a membership.
func (r *membershipRepository) Update(ctx context.Context, churchID, userID primitive.ObjectID, role *authz.ChurchRole, status *models.MembershipStatus) (*models.Membership, error) {
	set := bson.M{"updatedAt": time.Now()}
	if role != nil {
		set["role"] = *role
	}
	if status != nil {
		set["status"] = *status
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m models.Membership
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"churchId": churchID, "userId": userID},
		bson.M{"$set": set},
		opts,
	).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Delete removes a membership.
func (r *membershipRepository) Delete(ctx context.Context, churchID, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"churchId": churchID, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrMembershipNotFound
	}
	return nil
}

// CountActive returns the number of active members of a church.
func (r *membershipRepository) CountActive(ctx context.Context, churchID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"churchId": churchID,
		"status":   models.MembershipActive,
	})
	return int(count), err
}

// Store implements MembershipRepository.
func (r *membershipRepository) Store(churchID primitive.ObjectID) pagination.Store[models.Membership] {
	return r.store.Where(bson.E{Key: "churchId", Value: churchID})
}

// ChurchRolesForUser implements authz.RoleSource from the user's active memberships.
func (r *membershipRepository) ChurchRolesForUser(ctx context.Context, uid string) (authz.ChurchRoles, error) {
	roles := authz.ChurchRoles{}

	userID, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return roles, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID, "status": models.MembershipActive})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberships []models.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}

	for _, m := range memberships {
		roles[m.ChurchID.Hex()] = m.Role
	}
	return roles, nil
}
