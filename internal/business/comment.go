package business

import (
	"context"
	"fmt"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/google/uuid"
)

// PostRules is the part of PostBusiness comments depend on.
type PostRules interface {
	ValidatePostID(ctx context.Context, id uuid.UUID) error
	GetComments(ctx context.Context, id uuid.UUID) ([]models.Comment, error)
}

// CommentBusiness enforces the comment rules.
type CommentBusiness struct {
	repo  repository.CommentRepository
	posts PostRules
	opts  options
}

// NewCommentBusiness creates a CommentBusiness that checks post references through posts.
func NewCommentBusiness(repo repository.CommentRepository, posts PostRules, opts ...Option) *CommentBusiness {
	return &CommentBusiness{repo: repo, posts: posts, opts: newOptions(opts)}
}

// Create persists a comment on an existing post. The post reference is checked
// before any field.
func (b *CommentBusiness) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if err := b.posts.ValidatePostID(ctx, comment.PostID); err != nil {
		return nil, err
	}
	if comment.Author == "" {
		return nil, models.NewRequiredFieldError("Author is a required field")
	}
	if comment.Content == "" {
		return nil, models.NewRequiredFieldError("Content is a required field")
	}
	if comment.PostID == uuid.Nil {
		return nil, models.NewRequiredFieldError("Post Id is a required field")
	}

	comment.CreationDate = b.opts.creationDate(comment.CreationDate)
	comment.Post = nil
	if err := b.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update replaces an existing comment. The new post reference must exist too.
func (b *CommentBusiness) Update(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if comment.ID == uuid.Nil {
		return nil, models.NewRequiredFieldError("Id is required")
	}
	stored, err := b.repo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, models.NewNotFoundError(fmt.Sprintf("A Comment with id %s does not exist.", comment.ID))
	}
	if err := b.posts.ValidatePostID(ctx, comment.PostID); err != nil {
		return nil, err
	}

	comment.CreationDate = b.opts.updatedCreationDate(comment.CreationDate, stored.CreationDate)
	comment.Post = nil
	if err := b.repo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes an existing comment.
func (b *CommentBusiness) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return models.NewRequiredFieldError("Comment Id is required")
	}
	comment, err := b.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return models.NewNotFoundError("Comment not found")
	}
	return b.repo.Delete(ctx, comment)
}

// Get returns the comment, or nil when it does not exist.
func (b *CommentBusiness) Get(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	if id == uuid.Nil {
		return nil, models.NewRequiredFieldError("Comment Id is required")
	}
	return b.repo.GetByID(ctx, id)
}

// GetByPostID returns the comments of a post, or nil when the post does not exist.
func (b *CommentBusiness) GetByPostID(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	return b.posts.GetComments(ctx, postID)
}
