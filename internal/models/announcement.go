package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Announcement represents an admin-authored site announcement.
type Announcement struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	AuthorName  string             `json:"authorName" bson:"authorName" example:"Jane Admin"`
	AuthorImage string             `json:"authorImage,omitempty" bson:"authorImage,omitempty" example:"https://cdn.example.com/avatars/jane.png"`
	Title       string             `json:"title" bson:"title" example:"Scheduled maintenance"`
	Description string             `json:"description" bson:"description" example:"The forum will be read-only on Saturday."`
}

// CreateAnnouncementRequest is the payload for creating an announcement.
type CreateAnnouncementRequest struct {
	AuthorName  string `json:"authorName" binding:"required,min=2" example:"Jane Admin"`
	AuthorImage string `json:"authorImage" binding:"omitempty,url" example:"https://cdn.example.com/avatars/jane.png"`
	Title       string `json:"title" binding:"required,min=1" example:"Scheduled maintenance"`
	Description string `json:"description" binding:"required,min=1" example:"The forum will be read-only on Saturday."`
}
