// Package fixtures provides test data builders for API and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"ceslar/internal/authz"
	"ceslar/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Password is the plain-text password of every built user.
const Password = "password123"

var passwordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a plain user with a unique email.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			Name:        "Test User",
			Email:       fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[16:]),
			Password:    passwordHash,
			SystemRole:  authz.SystemRoleUser,
			Permissions: []authz.Permission{},
		},
	}
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPermissions(perms ...authz.Permission) *UserBuilder {
	b.user.Permissions = perms
	return b
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Church Fixtures =====

// ChurchBuilder provides fluent API for building test churches.
type ChurchBuilder struct {
	church models.Church
}

// NewChurch creates an active church in Lima with a unique slug.
func NewChurch() *ChurchBuilder {
	suffix := primitive.NewObjectID().Hex()[16:]
	return &ChurchBuilder{
		church: models.Church{
			Name:     "Iglesia " + suffix,
			Slug:     "iglesia-" + suffix,
			City:     "Lima",
			Country:  "PE",
			IsActive: true,
		},
	}
}

func (b *ChurchBuilder) WithName(name string) *ChurchBuilder {
	b.church.Name = name
	return b
}

func (b *ChurchBuilder) WithSlug(slug string) *ChurchBuilder {
	b.church.Slug = slug
	return b
}

func (b *ChurchBuilder) InCity(city string) *ChurchBuilder {
	b.church.City = city
	return b
}

func (b *ChurchBuilder) Inactive() *ChurchBuilder {
	b.church.IsActive = false
	return b
}

func (b *ChurchBuilder) BuildPtr() *models.Church {
	return &b.church
}

// ===== Membership Fixtures =====

// MembershipBuilder provides fluent API for building test memberships.
type MembershipBuilder struct {
	membership models.Membership
}

// NewMembership creates an active member of churchID.
func NewMembership(churchID, userID primitive.ObjectID) *MembershipBuilder {
	return &MembershipBuilder{
		membership: models.Membership{
			ChurchID: churchID,
			UserID:   userID,
			Role:     authz.RoleMember,
			Status:   models.MembershipActive,
		},
	}
}

func (b *MembershipBuilder) WithRole(role authz.ChurchRole) *MembershipBuilder {
	b.membership.Role = role
	return b
}

func (b *MembershipBuilder) BuildPtr() *models.Membership {
	return &b.membership
}

// ===== Event Fixtures =====

// EventBuilder provides fluent API for building test events.
type EventBuilder struct {
	event models.Event
}

// NewEvent creates a published event of churchID starting tomorrow.
func NewEvent(churchID primitive.ObjectID) *EventBuilder {
	return &EventBuilder{
		event: models.Event{
			ChurchID:  churchID,
			Title:     "Sunday Service",
			Category:  "worship",
			StartsAt:  time.Now().Add(24 * time.Hour).UTC().Truncate(time.Millisecond),
			Published: true,
		},
	}
}

func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.event.Title = title
	return b
}

func (b *EventBuilder) StartingIn(d time.Duration) *EventBuilder {
	b.event.StartsAt = time.Now().Add(d).UTC().Truncate(time.Millisecond)
	return b
}

func (b *EventBuilder) Draft() *EventBuilder {
	b.event.Published = false
	return b
}

func (b *EventBuilder) BuildPtr() *models.Event {
	return &b.event
}

// ===== Question Fixtures =====

// QuestionBuilder provides fluent API for building contact-form questions.
type QuestionBuilder struct {
	question models.Question
}

// NewQuestion creates an open question addressed to no church.
func NewQuestion() *QuestionBuilder {
	return &QuestionBuilder{
		question: models.Question{
			Name:    "Carlos",
			Email:   "carlos@example.com",
			Subject: "Baptism classes",
			Message: "When do the next baptism classes start?",
			Status:  models.QuestionOpen,
		},
	}
}

func (b *QuestionBuilder) ForChurch(churchID primitive.ObjectID) *QuestionBuilder {
	b.question.ChurchID = &churchID
	return b
}

func (b *QuestionBuilder) WithSubject(subject string) *QuestionBuilder {
	b.question.Subject = subject
	return b
}

func (b *QuestionBuilder) BuildPtr() *models.Question {
	return &b.question
}
