package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sort options accepted by the post listing endpoint.
const (
	SortLatest     = "latest"
	SortPopularity = "popularity"
)

// PostAuthor is the author snapshot embedded in a post document.
type PostAuthor struct {
	Name  string `json:"name" bson:"name" example:"John Doe"`
	Email string `json:"email" bson:"email" example:"user@example.com"`
	Image string `json:"image,omitempty" bson:"image,omitempty" example:"https://cdn.example.com/avatars/john.png"`
}

// Post represents a forum post.
// VoteDifference is derived at query time by the listing aggregation and is
// never written to the collection.
type Post struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Author         PostAuthor         `json:"author" bson:"author"`
	Title          string             `json:"title" bson:"title" example:"Generics in practice"`
	Description    string             `json:"description" bson:"description" example:"What finally made type parameters click for me..."`
	Tags           string             `json:"tags" bson:"tags" example:"go,generics"`
	UpVote         int                `json:"upVote" bson:"upVote" example:"10"`
	DownVote       int                `json:"downVote" bson:"downVote" example:"2"`
	CommentsCount  int                `json:"commentsCount" bson:"commentsCount" example:"4"`
	VoteDifference int                `json:"voteDifference,omitempty" bson:"voteDifference,omitempty" example:"8"`
	Time           time.Time          `json:"time" bson:"time" example:"2024-01-15T09:30:00Z"`
}

// CreatePostRequest is the payload for creating a post.
type CreatePostRequest struct {
	Title       string `json:"title" binding:"required,min=1" example:"Generics in practice"`
	Description string `json:"description" binding:"required,min=1" example:"What finally made type parameters click for me..."`
	Tags        string `json:"tags" binding:"omitempty" example:"go,generics"`
	AuthorName  string `json:"authorName" binding:"required,min=2" example:"John Doe"`
	AuthorImage string `json:"authorImage" binding:"omitempty,url" example:"https://cdn.example.com/avatars/john.png"`
}

// UpdateVotesRequest sets a post's vote counters.
type UpdateVotesRequest struct {
	UpVote   int `json:"upVote" binding:"min=0" example:"11"`
	DownVote int `json:"downVote" binding:"min=0" example:"2"`
}

// PostListQuery carries the listing filters parsed from the query string.
type PostListQuery struct {
	SortOption string `form:"sortOption" binding:"omitempty,oneof=latest popularity" example:"popularity"`
	SearchTerm string `form:"searchTerm" example:"go"`
}
