// Package server contains the HTTP handlers and wiring of the blog API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"blogapi/internal/business"
	"blogapi/internal/cache"
	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/featureflags"
	"blogapi/internal/middleware"
	"blogapi/internal/notifications"
	"blogapi/internal/repository"
	"blogapi/internal/service"

	_ "blogapi/docs" // swagger docs

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	notifier       *notifications.Notifier
	featureFlags   *featureflags.Manager
	validate       *validator.Validate
	posts          PostAPI
	comments       CommentAPI
}

// NewServer connects to the database and Redis and builds a Server on top of them.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db, cache.InitRedis(cfg.RedisURL))
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// redisClient may be nil: the list cache, events and write rate limits are then off.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if cfg == nil || db == nil {
		return nil, fmt.Errorf("server requires a config and a database")
	}

	flags := featureflags.NewManager(cfg.FeatureFlags)
	instance := instanceName()

	var postOpts []repository.PostRepositoryOption
	if redisClient != nil && flags.Enabled(featureflags.PostsCache, instance) {
		postOpts = append(postOpts, repository.WithListCache(cache.NewStore(redisClient)))
	}
	postRepo := repository.NewPostRepository(db, postOpts...)
	commentRepo := repository.NewCommentRepository(db)

	rules := []business.Option{
		business.WithServerTimestamps(flags.Enabled(featureflags.ServerTimestamps, instance)),
	}
	postBusiness := business.NewPostBusiness(postRepo, rules...)
	commentBusiness := business.NewCommentBusiness(commentRepo, postBusiness, rules...)

	server := &Server{
		config:       cfg,
		db:           db,
		redis:        redisClient,
		notifier:     notifications.NewNotifier(redisClient),
		featureFlags: flags,
		validate:     newValidator(),
		posts:        service.NewPostService(postBusiness),
		comments:     service.NewCommentService(commentBusiness),
	}
	if cfg.MetricsEnabled {
		server.promMiddleware = middleware.InitMetrics("blog-api")
	}
	return server, nil
}

func instanceName() string {
	host, err := os.Hostname()
	if err != nil {
		return ""
	}
	return host
}

// App returns the configured Fiber application, building it on first use.
func (s *Server) App() *fiber.App {
	if s.app != nil {
		return s.app
	}
	app := fiber.New(fiber.Config{
		AppName:      "Blog API",
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: ErrorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	s.app = app
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Context Middleware to propagate Request ID and trace ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       86400, // 24 hours
	}))

	if s.config.RateLimitPerMinute > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        s.config.RateLimitPerMinute,
			Expiration: 1 * time.Minute,
			// Never rate-limit preflight requests; they should be handled by CORS.
			Next: func(c *fiber.Ctx) bool {
				return c.Method() == fiber.MethodOptions
			},
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return respondMessages(c, fiber.StatusTooManyRequests, "Too many requests, please try again later.")
			},
		}))
	}
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Blog API Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/api/swagger/index.html", fiber.StatusFound)
	})

	s.registerResources(app)
	s.registerResources(api)
}

func (s *Server) registerResources(r fiber.Router) {
	posts := r.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", s.writeLimit("create_post"), s.CreatePost)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	posts.Get("/:id/comments", s.GetPostComments)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.writeLimit("update_post"), s.UpdatePost)
	posts.Delete("/:id", s.writeLimit("delete_post"), s.DeletePost)

	comments := r.Group("/comments")
	comments.Get("/", s.GetCommentsByPost)
	comments.Post("/", s.writeLimit("create_comment"), s.CreateComment)
	comments.Get("/:id", s.GetComment)
	comments.Put("/:id", s.writeLimit("update_comment"), s.UpdateComment)
	comments.Delete("/:id", s.writeLimit("delete_comment"), s.DeleteComment)
}

func (s *Server) writeLimit(name string) fiber.Handler {
	return middleware.RateLimit(s.redis, 30, time.Minute, name)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now().UTC(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if s.db == nil {
		dbStatus = "unhealthy"
	} else if sqlDB, err := s.db.DB(); err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis is optional: without it the cache and events are simply off.
	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"flags": s.featureFlags.Snapshot(instanceName()),
		"time":  time.Now().UTC(),
	})
}

// Start builds the app and listens on the configured port. It blocks until the
// listener stops.
func (s *Server) Start() error {
	app := s.App()
	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			if cerr := sqlDB.Close(); cerr != nil {
				middleware.Logger.Error("error closing sql DB", slog.String("error", cerr.Error()))
			}
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", slog.String("error", rerr.Error()))
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
