package business

import (
	"context"
	"fmt"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/google/uuid"
)

// PostBusiness enforces the post rules.
type PostBusiness struct {
	repo repository.PostRepository
	opts options
}

// NewPostBusiness creates a PostBusiness over repo.
func NewPostBusiness(repo repository.PostRepository, opts ...Option) *PostBusiness {
	return &PostBusiness{repo: repo, opts: newOptions(opts)}
}

// Create persists a post with both Title and Content set and returns it with its
// generated identity.
func (b *PostBusiness) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	if post.Title == "" {
		return nil, models.NewRequiredFieldError("Title is a Required field")
	}
	if post.Content == "" {
		return nil, models.NewRequiredFieldError("Content is a Required field")
	}

	post.CreationDate = b.opts.creationDate(post.CreationDate)
	post.Comments = nil
	if err := b.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update replaces Title, Content and CreationDate of an existing post.
func (b *PostBusiness) Update(ctx context.Context, post *models.Post) (*models.Post, error) {
	stored, err := b.mustExist(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	post.CreationDate = b.opts.updatedCreationDate(post.CreationDate, stored.CreationDate)
	post.Comments = nil
	if err := b.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes an existing post together with its comments.
func (b *PostBusiness) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return models.NewRequiredFieldError("Id is required")
	}
	post, err := b.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return models.NewNotFoundError("Post not found")
	}
	return b.repo.Delete(ctx, post)
}

// Get returns the post with its comments, or nil when it does not exist.
func (b *PostBusiness) Get(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	if id == uuid.Nil {
		return nil, models.NewRequiredFieldError("Id is required")
	}
	return b.repo.GetByID(ctx, id)
}

// GetAll returns every post without comments.
func (b *PostBusiness) GetAll(ctx context.Context) ([]models.Post, error) {
	return b.repo.GetAll(ctx)
}

// GetComments returns the comments of a post, or nil when the post does not exist.
func (b *PostBusiness) GetComments(ctx context.Context, id uuid.UUID) ([]models.Comment, error) {
	post, err := b.Get(ctx, id)
	if err != nil || post == nil {
		return nil, err
	}
	if post.Comments == nil {
		return []models.Comment{}, nil
	}
	return post.Comments, nil
}

// ValidatePostID fails unless id names a stored post.
func (b *PostBusiness) ValidatePostID(ctx context.Context, id uuid.UUID) error {
	_, err := b.mustExist(ctx, id)
	return err
}

func (b *PostBusiness) mustExist(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	if id == uuid.Nil {
		return nil, models.NewRequiredFieldError("Id is required")
	}
	post, err := b.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError(fmt.Sprintf("A Post with id %s does not exist.", id))
	}
	return post, nil
}
