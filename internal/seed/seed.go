// Package seed fills a database with demo posts and comments for development
// and testing.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"blogapi/internal/business"
	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/repository"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumPosts        int
	CommentsPerPost int
	MaxDays         int
	// RandSeed makes the generated content reproducible when non-zero.
	RandSeed int64
}

// Summary reports what a run created.
type Summary struct {
	Posts    int
	Comments int
}

// Seeder writes generated data through the business rules so seeded rows are
// indistinguishable from API-created ones.
type Seeder struct {
	db       *gorm.DB
	posts    *business.PostBusiness
	comments *business.CommentBusiness
}

// NewSeeder creates a Seeder bound to db.
func NewSeeder(db *gorm.DB) *Seeder {
	posts := business.NewPostBusiness(repository.NewPostRepository(db))
	return &Seeder{
		db:       db,
		posts:    posts,
		comments: business.NewCommentBusiness(repository.NewCommentRepository(db), posts),
	}
}

// Seed creates opts.NumPosts posts, each with opts.CommentsPerPost comments.
func (s *Seeder) Seed(ctx context.Context, opts Options) (Summary, error) {
	var sum Summary
	factory := NewFactory(opts.RandSeed, opts.MaxDays)

	for i := 0; i < opts.NumPosts; i++ {
		post, err := s.posts.Create(ctx, factory.BuildPost())
		if err != nil {
			return sum, fmt.Errorf("create post %d: %w", i+1, err)
		}
		sum.Posts++

		for j := 0; j < opts.CommentsPerPost; j++ {
			if _, err := s.comments.Create(ctx, factory.BuildComment(post)); err != nil {
				return sum, fmt.Errorf("create comment %d on post %s: %w", j+1, post.ID, err)
			}
			sum.Comments++
		}
	}

	middleware.Logger.InfoContext(ctx, "database seeded",
		slog.Int("posts", sum.Posts),
		slog.Int("comments", sum.Comments),
	)
	return sum, nil
}

// ClearAll removes every comment and post.
func (s *Seeder) ClearAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("clear comments: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Post{}).Error; err != nil {
			return fmt.Errorf("clear posts: %w", err)
		}
		return nil
	})
}

// IsEmpty reports whether no post exists yet.
func (s *Seeder) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count posts: %w", err)
	}
	return count == 0, nil
}
