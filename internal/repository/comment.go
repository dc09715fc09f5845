package repository

import (
	"blogapi/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Repository[models.Comment]
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return newGormRepository[models.Comment](db, "comments")
}
