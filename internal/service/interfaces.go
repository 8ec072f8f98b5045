// Package service contains business logic for the application.
package service

import (
	"context"

	"ceslar/internal/authz"
	"ceslar/internal/models"
	"ceslar/internal/pagination"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Me(ctx context.Context, claims *authz.Claims) (*models.MeResponse, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	ListUsers(ctx context.Context, req pagination.Request) (*pagination.Result[models.User], error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	UpdateAccess(ctx context.Context, id string, req *models.UpdateAccessRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// ChurchServicer defines the interface for church operations.
type ChurchServicer interface {
	ListChurches(ctx context.Context, filter models.ChurchFilter, req pagination.Request) (*pagination.Result[models.Church], error)
	GetChurch(ctx context.Context, id string) (*models.Church, error)
	CreateChurch(ctx context.Context, req *models.CreateChurchRequest) (*models.Church, error)
	UpdateChurch(ctx context.Context, id string, req *models.UpdateChurchRequest) (*models.Church, error)
	DeleteChurch(ctx context.Context, id string) error
}

// EventServicer defines the interface for event operations. churchID on
// writes is the church the gate authorized, empty for a system admin who
// named none.
type EventServicer interface {
	ListEvents(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Event], error)
	GetEvent(ctx context.Context, claims *authz.Claims, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, claims *authz.Claims, req *models.CreateEventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, churchID, id string, req *models.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, churchID, id string) error
}

// SermonServicer defines the interface for sermon operations.
type SermonServicer interface {
	ListSermons(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Sermon], error)
	GetSermon(ctx context.Context, claims *authz.Claims, id string) (*models.Sermon, error)
	CreateSermon(ctx context.Context, claims *authz.Claims, req *models.CreateSermonRequest) (*models.Sermon, error)
	UpdateSermon(ctx context.Context, churchID, id string, req *models.UpdateSermonRequest) (*models.Sermon, error)
	DeleteSermon(ctx context.Context, churchID, id string) error
}

// MinistryServicer defines the interface for ministry operations.
type MinistryServicer interface {
	ListMinistries(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Ministry], error)
	GetMinistry(ctx context.Context, claims *authz.Claims, id string) (*models.Ministry, error)
	CreateMinistry(ctx context.Context, claims *authz.Claims, req *models.CreateMinistryRequest) (*models.Ministry, error)
	UpdateMinistry(ctx context.Context, churchID, id string, req *models.UpdateMinistryRequest) (*models.Ministry, error)
	DeleteMinistry(ctx context.Context, churchID, id string) error
}

// MembershipServicer defines the interface for membership operations.
type MembershipServicer interface {
	ListMembers(ctx context.Context, churchID string, filter models.MembershipFilter, req pagination.Request) (*pagination.Result[models.Membership], error)
	Join(ctx context.Context, claims *authz.Claims, churchID string, req *models.JoinChurchRequest) (*models.Membership, error)
	UpdateMember(ctx context.Context, churchID, userID string, req *models.UpdateMembershipRequest) (*models.Membership, error)
	RemoveMember(ctx context.Context, churchID, userID string) error
}

// QuestionServicer defines the interface for contact-form questions.
type QuestionServicer interface {
	SubmitQuestion(ctx context.Context, req *models.CreateQuestionRequest) (*models.Question, error)
	ListQuestions(ctx context.Context, filter models.QuestionFilter, req pagination.Request) (*pagination.Result[models.Question], error)
	AnswerQuestion(ctx context.Context, claims *authz.Claims, churchID, id string, req *models.AnswerQuestionRequest) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}

// UploadServicer defines the interface for media upload operations.
type UploadServicer interface {
	CreateUpload(ctx context.Context, churchID string, req *models.CreateUploadRequest) (*models.UploadResponse, error)
	DeleteUpload(ctx context.Context, churchID, key string) error
}

// ClaimsInvalidator drops a user's cached claims.
type ClaimsInvalidator interface {
	Invalidate(ctx context.Context, uid string) error
}

// StatsEnqueuer schedules a church stats recount.
type StatsEnqueuer interface {
	EnqueueRecount(churchID primitive.ObjectID)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer       = (*AuthService)(nil)
	_ UserServicer       = (*UserService)(nil)
	_ ChurchServicer     = (*ChurchService)(nil)
	_ EventServicer      = (*EventService)(nil)
	_ SermonServicer     = (*SermonService)(nil)
	_ MinistryServicer   = (*MinistryService)(nil)
	_ MembershipServicer = (*MembershipService)(nil)
	_ QuestionServicer   = (*QuestionService)(nil)
	_ UploadServicer     = (*UploadService)(nil)

	_ ClaimsInvalidator = (*authz.ClaimsResolver)(nil)
)
