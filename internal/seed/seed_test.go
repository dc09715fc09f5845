package seed

import (
	"context"
	"testing"
	"time"
	"unicode/utf8"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(&config.Config{
		Env:          "test",
		DBDriver:     config.DriverSQLite,
		DBSQLitePath: ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestFactory_RespectsFieldLimits(t *testing.T) {
	f := NewFactory(42, 30)
	now := time.Now().UTC().Add(time.Second)

	for i := 0; i < 50; i++ {
		post := f.BuildPost()
		assert.NotEmpty(t, post.Title)
		assert.LessOrEqual(t, utf8.RuneCountInString(post.Title), maxTitleLen)
		assert.LessOrEqual(t, utf8.RuneCountInString(post.Content), maxPostContentLen)
		assert.False(t, post.CreationDate.After(now))
		assert.True(t, post.CreationDate.After(now.AddDate(0, 0, -31)))

		comment := f.BuildComment(post)
		assert.NotEmpty(t, comment.Author)
		assert.LessOrEqual(t, utf8.RuneCountInString(comment.Author), maxAuthorLen)
		assert.LessOrEqual(t, utf8.RuneCountInString(comment.Content), maxCommentContentLen)
		assert.False(t, comment.CreationDate.Before(post.CreationDate))
	}
}

func TestFactory_Overrides(t *testing.T) {
	f := NewFactory(1, 0)
	post := f.BuildPost(func(p *models.Post) { p.Title = "fixed" })
	assert.Equal(t, "fixed", post.Title)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("  abc  ", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "héé", truncate("hééllo", 3))
}

func TestSeeder_SeedAndClear(t *testing.T) {
	db := setupTestDB(t)
	s := NewSeeder(db)
	ctx := context.Background()

	empty, err := s.IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	sum, err := s.Seed(ctx, Options{NumPosts: 4, CommentsPerPost: 3, RandSeed: 7})
	require.NoError(t, err)
	assert.Equal(t, Summary{Posts: 4, Comments: 12}, sum)

	var posts, comments int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.EqualValues(t, 4, posts)
	assert.EqualValues(t, 12, comments)

	require.NoError(t, s.ClearAll(ctx))
	empty, err = s.IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Zero(t, comments)
}
