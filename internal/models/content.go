package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a scheduled church activity.
type Event struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	ChurchID    primitive.ObjectID `json:"churchId" bson:"churchId" example:"507f1f77bcf86cd799439012"`
	Title       string             `json:"title" bson:"title" example:"Youth Night"`
	Description string             `json:"description" bson:"description" example:"Worship, games and pizza"`
	Category    string             `json:"category" bson:"category" example:"youth"`
	Location    string             `json:"location" bson:"location" example:"Main hall"`
	StartsAt    time.Time          `json:"startsAt" bson:"startsAt" example:"2024-02-02T19:00:00Z"`
	EndsAt      *time.Time         `json:"endsAt,omitempty" bson:"endsAt,omitempty" example:"2024-02-02T21:00:00Z"`
	ImageKey    string             `json:"imageKey,omitempty" bson:"imageKey,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"-"`
	Published   bool               `json:"published" bson:"published" example:"true"`
	CreatedBy   primitive.ObjectID `json:"createdBy" bson:"createdBy" example:"507f1f77bcf86cd799439013"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	DeletedAt   *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// DocumentID implements pagination.Document.
func (e Event) DocumentID() string { return e.ID.Hex() }

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	ChurchID    string     `json:"churchId" binding:"required,mongodb" example:"507f1f77bcf86cd799439012"`
	Title       string     `json:"title" binding:"required,min=2,max=200" example:"Youth Night"`
	Description string     `json:"description" binding:"omitempty,max=5000"`
	Category    string     `json:"category" binding:"omitempty,max=50" example:"youth"`
	Location    string     `json:"location" binding:"omitempty,max=200" example:"Main hall"`
	StartsAt    time.Time  `json:"startsAt" binding:"required" example:"2024-02-02T19:00:00Z"`
	EndsAt      *time.Time `json:"endsAt" example:"2024-02-02T21:00:00Z"`
	ImageKey    string     `json:"imageKey" binding:"omitempty,max=300"`
	Published   bool       `json:"published" example:"true"`
}

// UpdateEventRequest is the payload for updating an event.
type UpdateEventRequest struct {
	ChurchID    string     `json:"churchId" binding:"omitempty,mongodb" example:"507f1f77bcf86cd799439012"`
	Title       *string    `json:"title" binding:"omitempty,min=2,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=5000"`
	Category    *string    `json:"category" binding:"omitempty,max=50"`
	Location    *string    `json:"location" binding:"omitempty,max=200"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	ImageKey    *string    `json:"imageKey" binding:"omitempty,max=300"`
	Published   *bool      `json:"published"`
}

// Sermon is a recorded message.
type Sermon struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	ChurchID  primitive.ObjectID `json:"churchId" bson:"churchId" example:"507f1f77bcf86cd799439012"`
	Title     string             `json:"title" bson:"title" example:"The Good Shepherd"`
	Preacher  string             `json:"preacher" bson:"preacher" example:"Pr. Juan Perez"`
	Scripture string             `json:"scripture" bson:"scripture" example:"John 10:11-18"`
	Series    string             `json:"series,omitempty" bson:"series,omitempty" example:"I Am"`
	Summary   string             `json:"summary" bson:"summary"`
	Date      time.Time          `json:"date" bson:"date" example:"2024-01-14T10:00:00Z"`
	MediaKey  string             `json:"mediaKey,omitempty" bson:"mediaKey,omitempty"`
	MediaURL  string             `json:"mediaUrl,omitempty" bson:"-"`
	Published bool               `json:"published" bson:"published" example:"true"`
	CreatedBy primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	DeletedAt *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// DocumentID implements pagination.Document.
func (s Sermon) DocumentID() string { return s.ID.Hex() }

// CreateSermonRequest is the payload for creating a sermon.
type CreateSermonRequest struct {
	ChurchID  string    `json:"churchId" binding:"required,mongodb" example:"507f1f77bcf86cd799439012"`
	Title     string    `json:"title" binding:"required,min=2,max=200" example:"The Good Shepherd"`
	Preacher  string    `json:"preacher" binding:"required,max=100" example:"Pr. Juan Perez"`
	Scripture string    `json:"scripture" binding:"omitempty,max=100" example:"John 10:11-18"`
	Series    string    `json:"series" binding:"omitempty,max=100"`
	Summary   string    `json:"summary" binding:"omitempty,max=5000"`
	Date      time.Time `json:"date" binding:"required" example:"2024-01-14T10:00:00Z"`
	MediaKey  string    `json:"mediaKey" binding:"omitempty,max=300"`
	Published bool      `json:"published" example:"true"`
}

// UpdateSermonRequest is the payload for updating a sermon.
type UpdateSermonRequest struct {
	ChurchID  string     `json:"churchId" binding:"omitempty,mongodb"`
	Title     *string    `json:"title" binding:"omitempty,min=2,max=200"`
	Preacher  *string    `json:"preacher" binding:"omitempty,max=100"`
	Scripture *string    `json:"scripture" binding:"omitempty,max=100"`
	Series    *string    `json:"series" binding:"omitempty,max=100"`
	Summary   *string    `json:"summary" binding:"omitempty,max=5000"`
	Date      *time.Time `json:"date"`
	MediaKey  *string    `json:"mediaKey" binding:"omitempty,max=300"`
	Published *bool      `json:"published"`
}

// Ministry is a standing group inside a church.
type Ministry struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	ChurchID    primitive.ObjectID `json:"churchId" bson:"churchId" example:"507f1f77bcf86cd799439012"`
	Name        string             `json:"name" bson:"name" example:"Worship Team"`
	Description string             `json:"description" bson:"description"`
	Leader      string             `json:"leader" bson:"leader" example:"Ana Torres"`
	Schedule    string             `json:"schedule,omitempty" bson:"schedule,omitempty" example:"Thursdays 7pm"`
	ImageKey    string             `json:"imageKey,omitempty" bson:"imageKey,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"-"`
	IsActive    bool               `json:"isActive" bson:"isActive" example:"true"`
	CreatedBy   primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	DeletedAt   *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// DocumentID implements pagination.Document.
func (m Ministry) DocumentID() string { return m.ID.Hex() }

// CreateMinistryRequest is the payload for creating a ministry.
type CreateMinistryRequest struct {
	ChurchID    string `json:"churchId" binding:"required,mongodb" example:"507f1f77bcf86cd799439012"`
	Name        string `json:"name" binding:"required,min=2,max=120" example:"Worship Team"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Leader      string `json:"leader" binding:"omitempty,max=100" example:"Ana Torres"`
	Schedule    string `json:"schedule" binding:"omitempty,max=100" example:"Thursdays 7pm"`
	ImageKey    string `json:"imageKey" binding:"omitempty,max=300"`
	IsActive    *bool  `json:"isActive" example:"true"`
}

// UpdateMinistryRequest is the payload for updating a ministry.
type UpdateMinistryRequest struct {
	ChurchID    string  `json:"churchId" binding:"omitempty,mongodb"`
	Name        *string `json:"name" binding:"omitempty,min=2,max=120"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Leader      *string `json:"leader" binding:"omitempty,max=100"`
	Schedule    *string `json:"schedule" binding:"omitempty,max=100"`
	ImageKey    *string `json:"imageKey" binding:"omitempty,max=300"`
	IsActive    *bool   `json:"isActive"`
}

// ContentFilter holds the optional list filters shared by events, sermons and ministries.
type ContentFilter struct {
	ChurchID string `form:"churchId" example:"507f1f77bcf86cd799439012"`
	Category string `form:"category" example:"youth"`
	Preacher string `form:"preacher" example:"Pr. Juan Perez"`
	Series   string `form:"series"`
	IsActive *bool  `form:"isActive"`
}
