package dto

import (
	"encoding/json"
	"testing"
	"time"

	"blogapi/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_AcceptedLayouts(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: `"2024-01-01"`, want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{raw: `"2024-01-01T10:20:30"`, want: time.Date(2024, 1, 1, 10, 20, 30, 0, time.UTC)},
		{raw: `"2024-01-01T10:20:30.5"`, want: time.Date(2024, 1, 1, 10, 20, 30, 500000000, time.UTC)},
		{raw: `"2024-01-01T10:20:30+02:00"`, want: time.Date(2024, 1, 1, 8, 20, 30, 0, time.UTC)},
		{raw: `"2024-01-01T10:20:30Z"`, want: time.Date(2024, 1, 1, 10, 20, 30, 0, time.UTC)},
		{raw: `""`, want: time.Time{}},
		{raw: `null`, want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestamp_Rejects(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`20240101`), &ts))
}

func TestTimestamp_MarshalsRFC3339UTC(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("x", 3600)))
	raw, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01T11:00:00Z"`, string(raw))
}

func TestPostCreate_DecodesCamelCase(t *testing.T) {
	var in PostCreate
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Hi","content":"World","creationDate":"2024-01-01"}`), &in))

	post := PostFromCreate(in)
	assert.Equal(t, uuid.Nil, post.ID)
	assert.Equal(t, "Hi", post.Title)
	assert.Equal(t, "World", post.Content)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), post.CreationDate)
}

func TestNewPost_MapsComments(t *testing.T) {
	postID := uuid.New()
	entity := &models.Post{
		ID:      postID,
		Title:   "t",
		Content: "c",
		Comments: []models.Comment{
			{ID: uuid.New(), PostID: postID, Author: "ann", Content: "one"},
		},
	}

	out := NewPost(entity)
	require.Len(t, out.Comments, 1)
	assert.Equal(t, postID, out.Comments[0].PostID)
	assert.Equal(t, "ann", out.Comments[0].Author)

	raw, err := json.Marshal(NewResult(out))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"content":{"id":"`+postID.String()+`"`)
	assert.Contains(t, string(raw), `"postId":"`+postID.String()+`"`)
}

func TestNewPost_OmitsEmptyComments(t *testing.T) {
	raw, err := json.Marshal(NewPost(&models.Post{ID: uuid.New(), Comments: []models.Comment{}}))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "comments")
}

func TestListMappers_Empty(t *testing.T) {
	assert.NotNil(t, NewPosts(nil))
	assert.Empty(t, NewPosts([]models.Post{}))
	assert.Nil(t, NewComments(nil))
	assert.NotNil(t, NewComments([]models.Comment{}))
	assert.Empty(t, NewComments([]models.Comment{}))
	assert.Nil(t, NewPost(nil))
	assert.Nil(t, NewComment(nil))

	posts := NewPosts([]models.Post{{Title: "a"}, {Title: "b"}})
	require.Len(t, posts, 2)
	assert.Equal(t, "b", posts[1].Title)
}

func TestCommentMappers(t *testing.T) {
	id, postID := uuid.New(), uuid.New()
	when := time.Date(2024, 4, 4, 4, 4, 4, 0, time.UTC)

	entity := CommentFromDTO(Comment{ID: id, PostID: postID, Author: "a", Content: "c", CreationDate: NewTimestamp(when)})
	assert.Equal(t, id, entity.ID)
	assert.Equal(t, when, entity.CreationDate)

	created := CommentFromCreate(CommentCreate{PostID: postID, Author: "a", Content: "c"})
	assert.Equal(t, uuid.Nil, created.ID)
	assert.True(t, created.CreationDate.IsZero())

	back := NewComment(entity)
	assert.Equal(t, *back, Comment{ID: id, PostID: postID, Author: "a", Content: "c", CreationDate: NewTimestamp(when)})
}
