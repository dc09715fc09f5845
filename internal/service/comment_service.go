package service

import (
	"context"
	"fmt"

	"blogapi/internal/dto"
	"blogapi/internal/models"
	"blogapi/internal/observability"

	"github.com/google/uuid"
)

// CommentBusiness is the rule set CommentService delegates to.
type CommentBusiness interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)
}

type CommentService struct {
	comments CommentBusiness
}

func NewCommentService(comments CommentBusiness) *CommentService {
	return &CommentService{comments: comments}
}

// Get returns one comment. Content is nil when it does not exist.
func (s *CommentService) Get(ctx context.Context, id uuid.UUID) (res dto.Result[*dto.Comment], err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService", "Get")
	defer func() { observability.EndSpan(span, err) }()

	comment, err := s.comments.Get(ctx, id)
	if err != nil {
		return res, err
	}
	return dto.NewResult(dto.NewComment(comment)), nil
}

func (s *CommentService) Create(ctx context.Context, in dto.CommentCreate) (res dto.Result[*dto.Comment], err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService", "Create")
	defer func() { observability.EndSpan(span, err) }()

	comment, err := s.comments.Create(ctx, dto.CommentFromCreate(in))
	if err != nil {
		return res, err
	}
	return dto.NewResult(dto.NewComment(comment)), nil
}

func (s *CommentService) Update(ctx context.Context, in dto.Comment) (res dto.Result[*dto.Comment], err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService", "Update")
	defer func() { observability.EndSpan(span, err) }()

	comment, err := s.comments.Update(ctx, dto.CommentFromDTO(in))
	if err != nil {
		return res, err
	}
	return dto.NewResult(dto.NewComment(comment)), nil
}

func (s *CommentService) Delete(ctx context.Context, id uuid.UUID) (res dto.Result[string], err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService", "Delete")
	defer func() { observability.EndSpan(span, err) }()

	if err = s.comments.Delete(ctx, id); err != nil {
		return res, err
	}
	return dto.NewResult(fmt.Sprintf("Comment with %s has been deleted.", id)), nil
}

// GetByPostID lists the comments of a post. Content is nil when the post does not exist.
func (s *CommentService) GetByPostID(ctx context.Context, postID uuid.UUID) (res dto.Result[[]dto.Comment], err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService", "GetByPostID")
	defer func() { observability.EndSpan(span, err) }()

	comments, err := s.comments.GetByPostID(ctx, postID)
	if err != nil {
		return res, err
	}
	return dto.NewResult(dto.NewComments(comments)), nil
}
