package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Comment represents a comment on a post.
// PostTitle is a weak reference: nothing guarantees a post with that title
// still exists, so readers must tolerate orphaned comments.
type Comment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserEmail string             `json:"userEmail" bson:"userEmail" example:"user@example.com"`
	PostTitle string             `json:"postTitle" bson:"postTitle" example:"Generics in practice"`
	Comment   string             `json:"comment" bson:"comment" example:"Great writeup, thanks!"`
}

// CreateCommentRequest is the payload for creating a comment.
type CreateCommentRequest struct {
	UserEmail string `json:"userEmail" binding:"required,email" example:"user@example.com"`
	PostTitle string `json:"postTitle" binding:"required,min=1" example:"Generics in practice"`
	Comment   string `json:"comment" binding:"required,min=1" example:"Great writeup, thanks!"`
}
