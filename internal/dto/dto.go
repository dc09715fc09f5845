// Package dto defines the wire shapes of the API and the conversions to and
// from the persisted entities.
package dto

import (
	"github.com/google/uuid"
)

// Result is the envelope of every response body.
type Result[T any] struct {
	Content T `json:"content"`
}

// NewResult wraps content.
func NewResult[T any](content T) Result[T] {
	return Result[T]{Content: content}
}

// PostCreate is the body of POST /posts.
type PostCreate struct {
	Title        string    `json:"title" validate:"required,max=30"`
	Content      string    `json:"content" validate:"required,max=1200"`
	CreationDate Timestamp `json:"creationDate"`
}

// Post is the body of PUT /posts/{id} and the post representation in responses.
// Comments is only filled when a single post is fetched.
type Post struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title" validate:"required,max=30"`
	Content      string    `json:"content" validate:"required,max=1200"`
	CreationDate Timestamp `json:"creationDate"`
	Comments     []Comment `json:"comments,omitempty" validate:"-"`
}

// CommentCreate is the body of POST /comments.
type CommentCreate struct {
	PostID       uuid.UUID `json:"postId" validate:"required"`
	Content      string    `json:"content" validate:"required,max=1000"`
	Author       string    `json:"author" validate:"required,max=30"`
	CreationDate Timestamp `json:"creationDate"`
}

// Comment is the body of PUT /comments/{id} and the comment representation in responses.
type Comment struct {
	ID           uuid.UUID `json:"id"`
	PostID       uuid.UUID `json:"postId" validate:"required"`
	Content      string    `json:"content" validate:"required,max=1000"`
	Author       string    `json:"author" validate:"required,max=30"`
	CreationDate Timestamp `json:"creationDate"`
}
