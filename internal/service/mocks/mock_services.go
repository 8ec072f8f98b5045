// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"ceslar/internal/authz"
	"ceslar/internal/models"
	"ceslar/internal/pagination"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	MeFunc       func(ctx context.Context, claims *authz.Claims) (*models.MeResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Me(ctx context.Context, claims *authz.Claims) (*models.MeResponse, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx, claims)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	ListUsersFunc    func(ctx context.Context, req pagination.Request) (*pagination.Result[models.User], error)
	GetUserFunc      func(ctx context.Context, id string) (*models.User, error)
	UpdateUserFunc   func(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	UpdateAccessFunc func(ctx context.Context, id string, req *models.UpdateAccessRequest) (*models.User, error)
	DeleteUserFunc   func(ctx context.Context, id string) error
}

func (m *MockUserService) ListUsers(ctx context.Context, req pagination.Request) (*pagination.Result[models.User], error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) UpdateAccess(ctx context.Context, id string, req *models.UpdateAccessRequest) (*models.User, error) {
	if m.UpdateAccessFunc != nil {
		return m.UpdateAccessFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockChurchService is a mock implementation of ChurchServicer.
type MockChurchService struct {
	ListChurchesFunc func(ctx context.Context, filter models.ChurchFilter, req pagination.Request) (*pagination.Result[models.Church], error)
	GetChurchFunc    func(ctx context.Context, id string) (*models.Church, error)
	CreateChurchFunc func(ctx context.Context, req *models.CreateChurchRequest) (*models.Church, error)
	UpdateChurchFunc func(ctx context.Context, id string, req *models.UpdateChurchRequest) (*models.Church, error)
	DeleteChurchFunc func(ctx context.Context, id string) error
}

func (m *MockChurchService) ListChurches(ctx context.Context, filter models.ChurchFilter, req pagination.Request) (*pagination.Result[models.Church], error) {
	if m.ListChurchesFunc != nil {
		return m.ListChurchesFunc(ctx, filter, req)
	}
	return nil, nil
}

func (m *MockChurchService) GetChurch(ctx context.Context, id string) (*models.Church, error) {
	if m.GetChurchFunc != nil {
		return m.GetChurchFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockChurchService) CreateChurch(ctx context.Context, req *models.CreateChurchRequest) (*models.Church, error) {
	if m.CreateChurchFunc != nil {
		return m.CreateChurchFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockChurchService) UpdateChurch(ctx context.Context, id string, req *models.UpdateChurchRequest) (*models.Church, error) {
	if m.UpdateChurchFunc != nil {
		return m.UpdateChurchFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockChurchService) DeleteChurch(ctx context.Context, id string) error {
	if m.DeleteChurchFunc != nil {
		return m.DeleteChurchFunc(ctx, id)
	}
	return nil
}

// MockEventService is a mock implementation of EventServicer.
type MockEventService struct {
	ListEventsFunc  func(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Event], error)
	GetEventFunc    func(ctx context.Context, claims *authz.Claims, id string) (*models.Event, error)
	CreateEventFunc func(ctx context.Context, claims *authz.Claims, req *models.CreateEventRequest) (*models.Event, error)
	UpdateEventFunc func(ctx context.Context, churchID string, id string, req *models.UpdateEventRequest) (*models.Event, error)
	DeleteEventFunc func(ctx context.Context, churchID string, id string) error
}

func (m *MockEventService) ListEvents(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Event], error) {
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc(ctx, claims, filter, req)
	}
	return nil, nil
}

func (m *MockEventService) GetEvent(ctx context.Context, claims *authz.Claims, id string) (*models.Event, error) {
	if m.GetEventFunc != nil {
		return m.GetEventFunc(ctx, claims, id)
	}
	return nil, nil
}

func (m *MockEventService) CreateEvent(ctx context.Context, claims *authz.Claims, req *models.CreateEventRequest) (*models.Event, error) {
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(ctx, claims, req)
	}
	return nil, nil
}

func (m *MockEventService) UpdateEvent(ctx context.Context, churchID string, id string, req *models.UpdateEventRequest) (*models.Event, error) {
	if m.UpdateEventFunc != nil {
		return m.UpdateEventFunc(ctx, churchID, id, req)
	}
	return nil, nil
}

func (m *MockEventService) DeleteEvent(ctx context.Context, churchID string, id string) error {
	if m.DeleteEventFunc != nil {
		return m.DeleteEventFunc(ctx, churchID, id)
	}
	return nil
}

// MockSermonService is a mock implementation of SermonServicer.
type MockSermonService struct {
	ListSermonsFunc  func(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Sermon], error)
	GetSermonFunc    func(ctx context.Context, claims *authz.Claims, id string) (*models.Sermon, error)
	CreateSermonFunc func(ctx context.Context, claims *authz.Claims, req *models.CreateSermonRequest) (*models.Sermon, error)
	UpdateSermonFunc func(ctx context.Context, churchID string, id string, req *models.UpdateSermonRequest) (*models.Sermon, error)
	DeleteSermonFunc func(ctx context.Context, churchID string, id string) error
}

func (m *MockSermonService) ListSermons(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Sermon], error) {
	if m.ListSermonsFunc != nil {
		return m.ListSermonsFunc(ctx, claims, filter, req)
	}
	return nil, nil
}

func (m *MockSermonService) GetSermon(ctx context.Context, claims *authz.Claims, id string) (*models.Sermon, error) {
	if m.GetSermonFunc != nil {
		return m.GetSermonFunc(ctx, claims, id)
	}
	return nil, nil
}

func (m *MockSermonService) CreateSermon(ctx context.Context, claims *authz.Claims, req *models.CreateSermonRequest) (*models.Sermon, error) {
	if m.CreateSermonFunc != nil {
		return m.CreateSermonFunc(ctx, claims, req)
	}
	return nil, nil
}

func (m *MockSermonService) UpdateSermon(ctx context.Context, churchID string, id string, req *models.UpdateSermonRequest) (*models.Sermon, error) {
	if m.UpdateSermonFunc != nil {
		return m.UpdateSermonFunc(ctx, churchID, id, req)
	}
	return nil, nil
}

func (m *MockSermonService) DeleteSermon(ctx context.Context, churchID string, id string) error {
	if m.DeleteSermonFunc != nil {
		return m.DeleteSermonFunc(ctx, churchID, id)
	}
	return nil
}

// MockMinistryService is a mock implementation of MinistryServicer.
type MockMinistryService struct {
	ListMinistriesFunc func(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Ministry], error)
	GetMinistryFunc    func(ctx context.Context, claims *authz.Claims, id string) (*models.Ministry, error)
	CreateMinistryFunc func(ctx context.Context, claims *authz.Claims, req *models.CreateMinistryRequest) (*models.Ministry, error)
	UpdateMinistryFunc func(ctx context.Context, churchID string, id string, req *models.UpdateMinistryRequest) (*models.Ministry, error)
	DeleteMinistryFunc func(ctx context.Context, churchID string, id string) error
}

func (m *MockMinistryService) ListMinistries(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Ministry], error) {
	if m.ListMinistriesFunc != nil {
		return m.ListMinistriesFunc(ctx, claims, filter, req)
	}
	return nil, nil
}

func (m *MockMinistryService) GetMinistry(ctx context.Context, claims *authz.Claims, id string) (*models.Ministry, error) {
	if m.GetMinistryFunc != nil {
		return m.GetMinistryFunc(ctx, claims, id)
	}
	return nil, nil
}

func (m *MockMinistryService) CreateMinistry(ctx context.Context, claims *authz.Claims, req *models.CreateMinistryRequest) (*models.Ministry, error) {
	if m.CreateMinistryFunc != nil {
		return m.CreateMinistryFunc(ctx, claims, req)
	}
	return nil, nil
}

func (m *MockMinistryService) UpdateMinistry(ctx context.Context, churchID string, id string, req *models.UpdateMinistryRequest) (*models.Ministry, error) {
	if m.UpdateMinistryFunc != nil {
		return m.UpdateMinistryFunc(ctx, churchID, id, req)
	}
	return nil, nil
}

func (m *MockMinistryService) DeleteMinistry(ctx context.Context, churchID string, id string) error {
	if m.DeleteMinistryFunc != nil {
		return m.DeleteMinistryFunc(ctx, churchID, id)
	}
	return nil
}

// MockMembershipService is a mock implementation of MembershipServicer.
type MockMembershipService struct {
	ListMembersFunc  func(ctx context.Context, churchID string, filter models.MembershipFilter, req pagination.Request) (*pagination.Result[models.Membership], error)
	JoinFunc         func(ctx context.Context, claims *authz.Claims, churchID string, req *models.JoinChurchRequest) (*models.Membership, error)
	UpdateMemberFunc func(ctx context.Context, churchID string, userID string, req *models.UpdateMembershipRequest) (*models.Membership, error)
	RemoveMemberFunc func(ctx context.Context, churchID string, userID string) error
}

func (m *MockMembershipService) ListMembers(ctx context.Context, churchID string, filter models.MembershipFilter, req pagination.Request) (*pagination.Result[models.Membership], error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, churchID, filter, req)
	}
	return nil, nil
}

func (m *MockMembershipService) Join(ctx context.Context, claims *authz.Claims, churchID string, req *models.JoinChurchRequest) (*models.Membership, error) {
	if m.JoinFunc != nil {
		return m.JoinFunc(ctx, claims, churchID, req)
	}
	return nil, nil
}

func (m *MockMembershipService) UpdateMember(ctx context.Context, churchID string, userID string, req *models.UpdateMembershipRequest) (*models.Membership, error) {
	if m.UpdateMemberFunc != nil {
		return m.UpdateMemberFunc(ctx, churchID, userID, req)
	}
	return nil, nil
}

func (m *MockMembershipService) RemoveMember(ctx context.Context, churchID string, userID string) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, churchID, userID)
	}
	return nil
}

// MockQuestionService is a mock implementation of QuestionServicer.
type MockQuestionService struct {
	SubmitQuestionFunc func(ctx context.Context, req *models.CreateQuestionRequest) (*models.Question, error)
	ListQuestionsFunc  func(ctx context.Context, filter models.QuestionFilter, req pagination.Request) (*pagination.Result[models.Question], error)
	AnswerQuestionFunc func(ctx context.Context, claims *authz.Claims, churchID string, id string, req *models.AnswerQuestionRequest) (*models.Question, error)
	DeleteQuestionFunc func(ctx context.Context, id string) error
}

func (m *MockQuestionService) SubmitQuestion(ctx context.Context, req *models.CreateQuestionRequest) (*models.Question, error) {
	if m.SubmitQuestionFunc != nil {
		return m.SubmitQuestionFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, filter models.QuestionFilter, req pagination.Request) (*pagination.Result[models.Question], error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, filter, req)
	}
	return nil, nil
}

func (m *MockQuestionService) AnswerQuestion(ctx context.Context, claims *authz.Claims, churchID string, id string, req *models.AnswerQuestionRequest) (*models.Question, error) {
	if m.AnswerQuestionFunc != nil {
		return m.AnswerQuestionFunc(ctx, claims, churchID, id, req)
	}
	return nil, nil
}

func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id string) error {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	return nil
}

// MockUploadService is a mock implementation of UploadServicer.
type MockUploadService struct {
	CreateUploadFunc func(ctx context.Context, churchID string, req *models.CreateUploadRequest) (*models.UploadResponse, error)
	DeleteUploadFunc func(ctx context.Context, churchID string, key string) error
}

func (m *MockUploadService) CreateUpload(ctx context.Context, churchID string, req *models.CreateUploadRequest) (*models.UploadResponse, error) {
	if m.CreateUploadFunc != nil {
		return m.CreateUploadFunc(ctx, churchID, req)
	}
	return nil, nil
}

func (m *MockUploadService) DeleteUpload(ctx context.Context, churchID string, key string) error {
	if m.DeleteUploadFunc != nil {
		return m.DeleteUploadFunc(ctx, churchID, key)
	}
	return nil
}
