package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"blogapi/internal/dto"
	"blogapi/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postBusinessStub is a stub for PostBusiness.
type postBusinessStub struct {
	createFn      func(context.Context, *models.Post) (*models.Post, error)
	updateFn      func(context.Context, *models.Post) (*models.Post, error)
	deleteFn      func(context.Context, uuid.UUID) error
	getFn         func(context.Context, uuid.UUID) (*models.Post, error)
	getAllFn      func(context.Context) ([]models.Post, error)
	getCommentsFn func(context.Context, uuid.UUID) ([]models.Comment, error)
}

func (s *postBusinessStub) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	return s.createFn(ctx, p)
}
func (s *postBusinessStub) Update(ctx context.Context, p *models.Post) (*models.Post, error) {
	return s.updateFn(ctx, p)
}
func (s *postBusinessStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}
func (s *postBusinessStub) Get(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.getFn(ctx, id)
}
func (s *postBusinessStub) GetAll(ctx context.Context) ([]models.Post, error) {
	return s.getAllFn(ctx)
}
func (s *postBusinessStub) GetComments(ctx context.Context, id uuid.UUID) ([]models.Comment, error) {
	return s.getCommentsFn(ctx, id)
}

func noopPostBusiness() *postBusinessStub {
	return &postBusinessStub{
		createFn: func(_ context.Context, p *models.Post) (*models.Post, error) {
			p.ID = uuid.New()
			return p, nil
		},
		updateFn:      func(_ context.Context, p *models.Post) (*models.Post, error) { return p, nil },
		deleteFn:      func(_ context.Context, _ uuid.UUID) error { return nil },
		getFn:         func(_ context.Context, _ uuid.UUID) (*models.Post, error) { return nil, nil },
		getAllFn:      func(_ context.Context) ([]models.Post, error) { return nil, nil },
		getCommentsFn: func(_ context.Context, _ uuid.UUID) ([]models.Comment, error) { return nil, nil },
	}
}

// commentBusinessStub is a stub for CommentBusiness.
type commentBusinessStub struct {
	createFn      func(context.Context, *models.Comment) (*models.Comment, error)
	updateFn      func(context.Context, *models.Comment) (*models.Comment, error)
	deleteFn      func(context.Context, uuid.UUID) error
	getFn         func(context.Context, uuid.UUID) (*models.Comment, error)
	getByPostIDFn func(context.Context, uuid.UUID) ([]models.Comment, error)
}

func (s *commentBusinessStub) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	return s.createFn(ctx, c)
}
func (s *commentBusinessStub) Update(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	return s.updateFn(ctx, c)
}
func (s *commentBusinessStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}
func (s *commentBusinessStub) Get(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return s.getFn(ctx, id)
}
func (s *commentBusinessStub) GetByPostID(ctx context.Context, id uuid.UUID) ([]models.Comment, error) {
	return s.getByPostIDFn(ctx, id)
}

func noopCommentBusiness() *commentBusinessStub {
	return &commentBusinessStub{
		createFn: func(_ context.Context, c *models.Comment) (*models.Comment, error) {
			c.ID = uuid.New()
			return c, nil
		},
		updateFn:      func(_ context.Context, c *models.Comment) (*models.Comment, error) { return c, nil },
		deleteFn:      func(_ context.Context, _ uuid.UUID) error { return nil },
		getFn:         func(_ context.Context, _ uuid.UUID) (*models.Comment, error) { return nil, nil },
		getByPostIDFn: func(_ context.Context, _ uuid.UUID) ([]models.Comment, error) { return nil, nil },
	}
}

func TestPostService_Create_MapsAndWraps(t *testing.T) {
	t.Parallel()

	var received *models.Post
	stub := noopPostBusiness()
	stub.createFn = func(_ context.Context, p *models.Post) (*models.Post, error) {
		received = p
		p.ID = uuid.New()
		return p, nil
	}
	svc := NewPostService(stub)

	when := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	res, err := svc.Create(context.Background(), dto.PostCreate{Title: "Hi", Content: "World", CreationDate: dto.NewTimestamp(when)})
	require.NoError(t, err)
	require.NotNil(t, res.Content)
	assert.NotEqual(t, uuid.Nil, res.Content.ID)
	assert.Equal(t, "Hi", res.Content.Title)
	assert.Equal(t, when, received.CreationDate)
}

func TestPostService_PropagatesDomainErrors(t *testing.T) {
	t.Parallel()

	stub := noopPostBusiness()
	stub.createFn = func(_ context.Context, _ *models.Post) (*models.Post, error) {
		return nil, models.NewRequiredFieldError("Title is a Required field")
	}
	stub.updateFn = func(_ context.Context, p *models.Post) (*models.Post, error) {
		return nil, models.NewNotFoundError(fmt.Sprintf("A Post with id %s does not exist.", p.ID))
	}
	svc := NewPostService(stub)

	_, err := svc.Create(context.Background(), dto.PostCreate{})
	assert.True(t, models.IsRequiredField(err))

	_, err = svc.Update(context.Background(), dto.Post{ID: uuid.New()})
	assert.True(t, models.IsNotFound(err))
}

func TestPostService_EmptyResults(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostBusiness())
	ctx := context.Background()

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all.Content)
	assert.Empty(t, all.Content)

	one, err := svc.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, one.Content)

	comments, err := svc.GetComments(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, comments.Content)
}

func TestPostService_GetAllAndGetComments(t *testing.T) {
	t.Parallel()

	postID := uuid.New()
	stub := noopPostBusiness()
	stub.getAllFn = func(_ context.Context) ([]models.Post, error) {
		return []models.Post{{ID: postID, Title: "a"}, {ID: uuid.New(), Title: "b"}}, nil
	}
	stub.getCommentsFn = func(_ context.Context, id uuid.UUID) ([]models.Comment, error) {
		return []models.Comment{{PostID: id, Author: "ann"}}, nil
	}
	svc := NewPostService(stub)

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all.Content, 2)
	assert.Equal(t, postID, all.Content[0].ID)

	comments, err := svc.GetComments(context.Background(), postID)
	require.NoError(t, err)
	require.Len(t, comments.Content, 1)
	assert.Equal(t, "ann", comments.Content[0].Author)
}

func TestPostService_Delete(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := NewPostService(noopPostBusiness())
	res, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Post with %s has been deleted.", id), res.Content)

	failing := noopPostBusiness()
	failing.deleteFn = func(_ context.Context, _ uuid.UUID) error { return models.NewNotFoundError("Post not found") }
	res, err = NewPostService(failing).Delete(context.Background(), id)
	assert.True(t, models.IsNotFound(err))
	assert.Empty(t, res.Content)
}

func TestCommentService_Operations(t *testing.T) {
	t.Parallel()

	postID := uuid.New()
	stub := noopCommentBusiness()
	stub.getFn = func(_ context.Context, id uuid.UUID) (*models.Comment, error) {
		return &models.Comment{ID: id, PostID: postID, Author: "ann", Content: "hi"}, nil
	}
	stub.getByPostIDFn = func(_ context.Context, id uuid.UUID) ([]models.Comment, error) {
		return []models.Comment{{PostID: id}}, nil
	}
	svc := NewCommentService(stub)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CommentCreate{PostID: postID, Author: "ann", Content: "hi"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.Content.ID)
	assert.Equal(t, postID, created.Content.PostID)

	got, err := svc.Get(ctx, created.Content.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", got.Content.Author)

	updated, err := svc.Update(ctx, dto.Comment{ID: created.Content.ID, PostID: postID, Author: "bob", Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.Content.Author)

	byPost, err := svc.GetByPostID(ctx, postID)
	require.NoError(t, err)
	require.Len(t, byPost.Content, 1)

	deleted, err := svc.Delete(ctx, created.Content.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Comment with %s has been deleted.", created.Content.ID), deleted.Content)
}

func TestCommentService_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("storage offline")
	stub := noopCommentBusiness()
	stub.createFn = func(_ context.Context, c *models.Comment) (*models.Comment, error) {
		return nil, models.NewNotFoundError(fmt.Sprintf("A Post with id %s does not exist.", c.PostID))
	}
	stub.getByPostIDFn = func(_ context.Context, _ uuid.UUID) ([]models.Comment, error) { return nil, boom }
	svc := NewCommentService(stub)

	_, err := svc.Create(context.Background(), dto.CommentCreate{PostID: uuid.New(), Author: "a", Content: "c"})
	assert.True(t, models.IsNotFound(err))

	_, err = svc.GetByPostID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)

	missing, err := svc.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing.Content)
}
