package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChurchStats are denormalized counters maintained by the stats processor.
type ChurchStats struct {
	Members   int       `json:"members" bson:"members" example:"120"`
	Events    int       `json:"events" bson:"events" example:"8"`
	Sermons   int       `json:"sermons" bson:"sermons" example:"42"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// Church represents a congregation.
type Church struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name        string             `json:"name" bson:"name" example:"Iglesia Central"`
	Slug        string             `json:"slug" bson:"slug" example:"iglesia-central"`
	Description string             `json:"description" bson:"description" example:"A community church in downtown Lima"`
	Address     string             `json:"address" bson:"address" example:"Av. Arequipa 123"`
	City        string             `json:"city" bson:"city" example:"Lima"`
	Country     string             `json:"country" bson:"country" example:"PE"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty" example:"+51 1 555 0101"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty" example:"hola@iglesiacentral.org"`
	Website     string             `json:"website,omitempty" bson:"website,omitempty" example:"https://iglesiacentral.org"`
	LogoKey     string             `json:"logoKey,omitempty" bson:"logoKey,omitempty" example:"churches/507f1f77bcf86cd799439011/logo/9b2c.png"`
	LogoURL     string             `json:"logoUrl,omitempty" bson:"-"`
	IsActive    bool               `json:"isActive" bson:"isActive" example:"true"`
	Stats       ChurchStats        `json:"stats" bson:"stats"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	DeletedAt   *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// DocumentID implements pagination.Document.
func (c Church) DocumentID() string { return c.ID.Hex() }

// CreateChurchRequest is the payload for creating a church.
type CreateChurchRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=120" example:"Iglesia Central"`
	Slug        string `json:"slug" binding:"required,slug" example:"iglesia-central"`
	Description string `json:"description" binding:"omitempty,max=2000" example:"A community church in downtown Lima"`
	Address     string `json:"address" binding:"omitempty,max=200" example:"Av. Arequipa 123"`
	City        string `json:"city" binding:"required,max=100" example:"Lima"`
	Country     string `json:"country" binding:"required,len=2" example:"PE"`
	Phone       string `json:"phone" binding:"omitempty,max=30" example:"+51 1 555 0101"`
	Email       string `json:"email" binding:"omitempty,email" example:"hola@iglesiacentral.org"`
	Website     string `json:"website" binding:"omitempty,url" example:"https://iglesiacentral.org"`
}

// UpdateChurchRequest is the payload for updating a church.
type UpdateChurchRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=120" example:"Iglesia Central de Lima"`
	Slug        *string `json:"slug" binding:"omitempty,slug" example:"iglesia-central-lima"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Address     *string `json:"address" binding:"omitempty,max=200"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Country     *string `json:"country" binding:"omitempty,len=2"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Website     *string `json:"website" binding:"omitempty,url"`
	LogoKey     *string `json:"logoKey" binding:"omitempty,max=300"`
	IsActive    *bool   `json:"isActive" example:"true"`
}

// ChurchFilter holds the optional list filters for churches.
type ChurchFilter struct {
	City     string `form:"city" example:"Lima"`
	Country  string `form:"country" example:"PE"`
	IsActive *bool  `form:"isActive" example:"true"`
	Search   string `form:"search" example:"igle"`
}
