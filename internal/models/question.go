package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionStatus tracks whether a question has been answered.
type QuestionStatus string

const (
	// QuestionOpen awaits an answer.
	QuestionOpen QuestionStatus = "open"
	// QuestionAnswered has an answer.
	QuestionAnswered QuestionStatus = "answered"
)

// Question is a contact-form submission, optionally addressed to a church.
type Question struct {
	ID         primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	ChurchID   *primitive.ObjectID `json:"churchId,omitempty" bson:"churchId,omitempty" example:"507f1f77bcf86cd799439012"`
	Name       string              `json:"name" bson:"name" example:"Carlos"`
	Email      string              `json:"email" bson:"email" example:"carlos@example.com"`
	Subject    string              `json:"subject" bson:"subject" example:"Baptism classes"`
	Message    string              `json:"message" bson:"message" example:"When do the next baptism classes start?"`
	Status     QuestionStatus      `json:"status" bson:"status" example:"open"`
	Answer     string              `json:"answer,omitempty" bson:"answer,omitempty"`
	AnsweredBy *primitive.ObjectID `json:"answeredBy,omitempty" bson:"answeredBy,omitempty"`
	AnsweredAt *time.Time          `json:"answeredAt,omitempty" bson:"answeredAt,omitempty"`
	CreatedAt  time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt  time.Time           `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// DocumentID implements pagination.Document.
func (q Question) DocumentID() string { return q.ID.Hex() }

// CreateQuestionRequest is the contact-form payload.
type CreateQuestionRequest struct {
	ChurchID string `json:"churchId" binding:"omitempty,mongodb" example:"507f1f77bcf86cd799439012"`
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Carlos"`
	Email    string `json:"email" binding:"required,email" example:"carlos@example.com"`
	Subject  string `json:"subject" binding:"required,max=200" example:"Baptism classes"`
	Message  string `json:"message" binding:"required,max=5000" example:"When do the next baptism classes start?"`
}

// AnswerQuestionRequest is the payload for answering a question.
type AnswerQuestionRequest struct {
	ChurchID string `json:"churchId" binding:"omitempty,mongodb" example:"507f1f77bcf86cd799439012"`
	Answer   string `json:"answer" binding:"required,min=1,max=5000" example:"Classes start on the first Sunday of March."`
}

// QuestionFilter holds the optional list filters for questions.
type QuestionFilter struct {
	ChurchID string `form:"churchId"`
	Status   string `form:"status" example:"open"`
}
