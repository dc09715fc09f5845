// Package bootstrap wires the process-wide runtime: database, Redis, tracing and
// optional demo data.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"blogapi/internal/cache"
	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/middleware"
	"blogapi/internal/observability"
	"blogapi/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// Seed fills an empty database with demo content.
	Seed bool
}

// Runtime is everything InitRuntime brought up.
type Runtime struct {
	DB    *gorm.DB
	Redis *redis.Client
	// ShutdownTracing flushes pending spans.
	ShutdownTracing func(context.Context) error
}

// InitRuntime connects to DB and Redis, installs tracing and optionally seeds.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*Runtime, error) {
	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "blog-api",
		ServiceVersion: "1.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampleRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing init failed: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (nil client if disabled or unreachable)
	rdb := cache.InitRedis(cfg.RedisURL)

	if opts.Seed {
		if err := seedIfEmpty(ctx, db); err != nil {
			_ = shutdown(ctx)
			return nil, err
		}
	}

	return &Runtime{DB: db, Redis: rdb, ShutdownTracing: shutdown}, nil
}

func seedIfEmpty(ctx context.Context, db *gorm.DB) error {
	s := seed.NewSeeder(db)
	empty, err := s.IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("seed check failed: %w", err)
	}
	if !empty {
		middleware.Logger.InfoContext(ctx, "database already has posts, skipping seed")
		return nil
	}
	sum, err := s.Seed(ctx, seed.Options{NumPosts: 10, CommentsPerPost: 3})
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	middleware.Logger.InfoContext(ctx, "seeded demo content", slog.Int("posts", sum.Posts))
	return nil
}
