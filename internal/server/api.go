package server

import (
	"context"

	"blogapi/internal/dto"

	"github.com/google/uuid"
)

// PostAPI is the application service behind the post routes.
type PostAPI interface {
	GetAll(ctx context.Context) (dto.Result[[]dto.Post], error)
	Get(ctx context.Context, id uuid.UUID) (dto.Result[*dto.Post], error)
	Create(ctx context.Context, in dto.PostCreate) (dto.Result[*dto.Post], error)
	Update(ctx context.Context, in dto.Post) (dto.Result[*dto.Post], error)
	Delete(ctx context.Context, id uuid.UUID) (dto.Result[string], error)
	GetComments(ctx context.Context, id uuid.UUID) (dto.Result[[]dto.Comment], error)
}

// CommentAPI is the application service behind the comment routes.
type CommentAPI interface {
	Get(ctx context.Context, id uuid.UUID) (dto.Result[*dto.Comment], error)
	Create(ctx context.Context, in dto.CommentCreate) (dto.Result[*dto.Comment], error)
	Update(ctx context.Context, in dto.Comment) (dto.Result[*dto.Comment], error)
	Delete(ctx context.Context, id uuid.UUID) (dto.Result[string], error)
	GetByPostID(ctx context.Context, postID uuid.UUID) (dto.Result[[]dto.Comment], error)
}
