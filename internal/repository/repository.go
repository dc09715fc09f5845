// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"fmt"

	"blogapi/internal/database"
	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/observability"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the CRUD contract shared by every entity. GetByID returns
// (nil, nil) when no row matches. Update replaces the whole row and does not check
// that it exists; callers do that first.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}

type gormRepository[T any] struct {
	db    *gorm.DB
	table string
	log   *observability.RepoLogger
}

func newGormRepository[T any](db *gorm.DB, table string) *gormRepository[T] {
	return &gormRepository[T]{
		db:    db,
		table: table,
		log:   observability.NewRepoLogger(table, middleware.Logger),
	}
}

func (r *gormRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	defer observability.TrackQuery("get_all", r.table)()

	var out []T
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		r.log.LogError(ctx, "get_all", err)
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	return out, nil
}

func (r *gormRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	defer observability.TrackQuery("get_by_id", r.table)()
	return r.first(r.db.WithContext(ctx), id)
}

func (r *gormRepository[T]) first(tx *gorm.DB, id uuid.UUID) (*T, error) {
	var entity T
	err := tx.First(&entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.LogError(tx.Statement.Context, "get_by_id", err)
		return nil, fmt.Errorf("get %s %s: %w", r.table, id, err)
	}
	return &entity, nil
}

func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	defer observability.TrackQuery("create", r.table)()

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		r.log.LogError(ctx, "create", err)
		return r.wrapWriteError("create", err)
	}
	r.log.LogWrite(ctx, "create", identity(entity))
	return nil
}

func (r *gormRepository[T]) Update(ctx context.Context, entity *T) error {
	defer observability.TrackQuery("update", r.table)()

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error; err != nil {
		r.log.LogError(ctx, "update", err)
		return r.wrapWriteError("update", err)
	}
	r.log.LogWrite(ctx, "update", identity(entity))
	return nil
}

func (r *gormRepository[T]) Delete(ctx context.Context, entity *T) error {
	defer observability.TrackQuery("delete", r.table)()

	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		r.log.LogError(ctx, "delete", err)
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	r.log.LogWrite(ctx, "delete", identity(entity))
	return nil
}

func (r *gormRepository[T]) wrapWriteError(op string, err error) error {
	if database.IsForeignKeyViolation(err) || database.IsUniqueViolation(err) {
		constraint := database.ConstraintName(err)
		if constraint == "" {
			constraint = "integrity constraint"
		}
		return models.NewInternalError(fmt.Errorf("%s %s violates %s: %w", op, r.table, constraint, err))
	}
	return fmt.Errorf("%s %s: %w", op, r.table, err)
}

type identifiable interface {
	GetID() uuid.UUID
}

func identity(entity any) any {
	if e, ok := entity.(identifiable); ok {
		return e.GetID()
	}
	return nil
}
