// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles and membership badges stored on the user document.
const (
	RoleAdmin = "admin"

	BadgeGold = "Gold"
	BadgeNone = "None"
)

// FreePostLimit is the number of posts a user without a Gold badge may create.
const FreePostLimit = 5

// User represents a forum user.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email     string             `json:"email" bson:"email" example:"user@example.com"`
	Name      string             `json:"name" bson:"name" example:"John Doe"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty" example:"https://cdn.example.com/avatars/john.png"`
	Role      string             `json:"role,omitempty" bson:"role,omitempty" example:"admin"`
	Badge     string             `json:"badge,omitempty" bson:"badge,omitempty" example:"Gold"`
	PostCount int                `json:"postCount" bson:"postCount" example:"3"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// RegisterUserRequest is the payload for registering a user.
type RegisterUserRequest struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
	Name  string `json:"name" binding:"required,min=2" example:"John Doe"`
	Image string `json:"image" binding:"omitempty,url" example:"https://cdn.example.com/avatars/john.png"`
}

// RegisterUserResponse reports the outcome of a registration attempt.
// InsertedID is null when the email is already registered.
type RegisterUserResponse struct {
	Message    string              `json:"message" example:"user created"`
	InsertedID *primitive.ObjectID `json:"insertedId" example:"507f1f77bcf86cd799439011"`
}

// AdminStatusResponse reports whether a user has the admin role.
type AdminStatusResponse struct {
	Admin bool `json:"admin" example:"true"`
}

// MembershipResponse is a user's badge and post count.
type MembershipResponse struct {
	Badge     string `json:"badge" example:"Gold"`
	PostCount int    `json:"postCount" example:"3"`
}

// AdminProfileResponse is the admin dashboard profile with collection counts.
type AdminProfileResponse struct {
	Name         string `json:"name" example:"Jane Admin"`
	Image        string `json:"image,omitempty" example:"https://cdn.example.com/avatars/jane.png"`
	Email        string `json:"email" example:"admin@example.com"`
	PostCount    int64  `json:"postCount" example:"120"`
	CommentCount int64  `json:"commentCount" example:"480"`
	UserCount    int64  `json:"userCount" example:"42"`
}
