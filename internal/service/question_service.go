package service

import (
	"context"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"
	"ceslar/internal/repository"
)

// QuestionService handles contact-form questions.
type QuestionService struct {
	repo     repository.QuestionRepository
	churches repository.ChurchRepository
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(repo repository.QuestionRepository, churches repository.ChurchRepository) *QuestionService {
	return &QuestionService{
		repo:     repo,
		churches: churches,
	}
}

// SubmitQuestion stores a new open question. A church, when named, must exist.
func (s *QuestionService) SubmitQuestion(ctx context.Context, req *models.CreateQuestionRequest) (*models.Question, error) {
	question := &models.Question{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if req.ChurchID != "" {
		churchID, err := objectID(req.ChurchID, apperrors.ErrChurchNotFound)
		if err != nil {
			return nil, err
		}
		if _, err := s.churches.FindByID(ctx, churchID); err != nil {
			return nil, err
		}
		question.ChurchID = &churchID
	}

	if err := s.repo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// ListQuestions returns one page of questions, optionally narrowed to one
// church and status.
func (s *QuestionService) ListQuestions(ctx context.Context, filter models.QuestionFilter, req pagination.Request) (*pagination.Result[models.Question], error) {
	churchID, err := filterID("churchId", filter.ChurchID)
	if err != nil {
		return nil, err
	}

	req = req.With(
		pagination.Eq("churchId", churchID),
		pagination.Eq("status", filter.Status),
	)
	return pagination.NewResolver(s.repo.Store()).Resolve(ctx, req)
}

// AnswerQuestion answers a question addressed to churchID. Questions without
// a church can only be answered by a system admin.
func (s *QuestionService) AnswerQuestion(ctx context.Context, claims *authz.Claims, churchID, id string, req *models.AnswerQuestionRequest) (*models.Question, error) {
	oid, err := objectID(id, apperrors.ErrQuestionNotFound)
	if err != nil {
		return nil, err
	}
	answeredBy, err := objectID(claims.UID, apperrors.ErrNotAuthenticated)
	if err != nil {
		return nil, err
	}

	question, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if churchID != "" {
		if question.ChurchID == nil {
			return nil, apperrors.ErrChurchMismatch
		}
		if err := sameChurch(churchID, *question.ChurchID); err != nil {
			return nil, err
		}
	}

	return s.repo.Answer(ctx, oid, req.Answer, answeredBy)
}

// DeleteQuestion permanently removes a question.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	oid, err := objectID(id, apperrors.ErrQuestionNotFound)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}
