package repository

import (
	"context"
	"testing"
	"time"

	"blogapi/internal/cache"
	"blogapi/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListCache(t *testing.T) {
	db := setupSQLiteDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := NewPostRepository(db, WithListCache(cache.NewStore(rdb)))
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, &models.Post{Title: "one", Content: "1", CreationDate: now}))

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.True(t, mr.Exists(cache.PostsListKey))

	// A write that bypasses the repository is invisible until the entry is invalidated.
	require.NoError(t, db.Create(&models.Post{Title: "sneaky", Content: "2", CreationDate: now}).Error)
	cached, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	third := &models.Post{Title: "three", Content: "3", CreationDate: now}
	require.NoError(t, repo.Create(ctx, third))
	assert.False(t, mr.Exists(cache.PostsListKey))

	fresh, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 3)

	require.NoError(t, repo.Delete(ctx, third))
	assert.False(t, mr.Exists(cache.PostsListKey))

	afterDelete, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, afterDelete, 2)
}
