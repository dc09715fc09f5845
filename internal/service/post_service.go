// Package service exposes the application services: they translate between wire
// DTOs and entities, wrap results in the response envelope and delegate the rules
// to the business layer.
package service

import (
	"context"
	"fmt"

	"blogapi/internal/dto"
	"blogapi/internal/models"
	"blogapi/internal/observability"

	"github.com/google/uuid"
)

// PostBusiness is the rule set PostService delegates to.
type PostBusiness interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) (*models.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetComments(ctx context.Context, id uuid.UUID) ([]models.Comment, error)
}

type PostService struct {
	posts PostBusiness
}

func NewPostService(posts PostBusiness) *PostService {
	return &PostService{posts: posts}
}

// GetAll lists every post without comments. Content is empty, not nil, when there are none.
func (s *PostService) GetAll(ctx context.Context) (res dto.Result[[]dto.Post], err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "GetAll")
	defer func() { observability.EndSpan(span, err) }()

	posts, err := s.posts.GetAll(ctx)
	if err != nil {
		return res, err
	}
	return dto.NewResult(dto.NewPosts(posts)), nil
}

// Get returns one post with its comments. Content is nil when it does not exist.
func (s *PostService) Get(ctx context.Context, id uuid.UUID) (res dto.Result[*dto.Post], err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "Get")
	defer func() { observability.EndSpan(span, err) }()

	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return res, err
	}
	return dto.NewResult(dto.NewPost(post)), nil
}

func (s *PostService) Create(ctx context.Context, in dto.PostCreate) (res dto.Result[*dto.Post], err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "Create")
	defer func() { observability.EndSpan(span, err) }()

	post, err := s.posts.Create(ctx, dto.PostFromCreate(in))
	if err != nil {
		return res, err
	}
	return dto.NewResult(dto.NewPost(post)), nil
}

func (s *PostService) Update(ctx context.Context, in dto.Post) (res dto.Result[*dto.Post], err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "Update")
	defer func() { observability.EndSpan(span, err) }()

	post, err := s.posts.Update(ctx, dto.PostFromDTO(in))
	if err != nil {
		return res, err
	}
	return dto.NewResult(dto.NewPost(post)), nil
}

// Delete removes the post and its comments and reports what was deleted.
func (s *PostService) Delete(ctx context.Context, id uuid.UUID) (res dto.Result[string], err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "Delete")
	defer func() { observability.EndSpan(span, err) }()

	if err = s.posts.Delete(ctx, id); err != nil {
		return res, err
	}
	return dto.NewResult(fmt.Sprintf("Post with %s has been deleted.", id)), nil
}

// GetComments lists the comments of a post. Content is nil only when the post does
// not exist.
func (s *PostService) GetComments(ctx context.Context, id uuid.UUID) (res dto.Result[[]dto.Comment], err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "GetComments")
	defer func() { observability.EndSpan(span, err) }()

	comments, err := s.posts.GetComments(ctx, id)
	if err != nil {
		return res, err
	}
	return dto.NewResult(dto.NewComments(comments)), nil
}
