package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tag represents a post tag available for selection.
type Tag struct {
	ID  primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Tag string             `json:"tag" bson:"tag" example:"golang"`
}

// CreateTagRequest is the payload for adding a tag.
type CreateTagRequest struct {
	Tag string `json:"tag" binding:"required,min=1,max=32" example:"golang"`
}

// CreateTagResponse reports the outcome of a tag insert.
// InsertedID is null when the tag already exists.
type CreateTagResponse struct {
	Message    string              `json:"message" example:"tag added successfully"`
	InsertedID *primitive.ObjectID `json:"insertedId" example:"507f1f77bcf86cd799439011"`
}
