package repository

import (
	"context"

	"blogapi/internal/cache"
	"blogapi/internal/models"
	"blogapi/internal/observability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
// GetByID loads the post's comments; GetAll never does.
type PostRepository interface {
	Repository[models.Post]
}

type postRepository struct {
	*gormRepository[models.Post]
	cache *cache.Store
}

// PostRepositoryOption customizes NewPostRepository.
type PostRepositoryOption func(*postRepository)

// WithListCache serves GetAll through store and invalidates it on writes.
func WithListCache(store *cache.Store) PostRepositoryOption {
	return func(r *postRepository) {
		r.cache = store
	}
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB, opts ...PostRepositoryOption) PostRepository {
	r := &postRepository{gormRepository: newGormRepository[models.Post](db, "posts")}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.cache.Aside(ctx, cache.PostsListKey, &posts, cache.PostsListTTL, func() error {
		loaded, err := r.gormRepository.GetAll(ctx)
		posts = loaded
		return err
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	defer observability.TrackQuery("get_by_id", r.table)()

	tx := r.db.WithContext(ctx).Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("creation_date ASC")
	})
	post, err := r.first(tx, id)
	if err != nil || post == nil {
		return post, err
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	return post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.gormRepository.Create(ctx, post); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, cache.PostsListKey)
	return nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.gormRepository.Update(ctx, post); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, cache.PostsListKey)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, post *models.Post) error {
	if err := r.gormRepository.Delete(ctx, post); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, cache.PostsListKey)
	return nil
}
