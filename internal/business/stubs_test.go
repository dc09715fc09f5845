package business

import (
	"context"
	"testing"

	"blogapi/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	getAllFn  func(context.Context) ([]models.Post, error)
	getByIDFn func(context.Context, uuid.UUID) (*models.Post, error)
	createFn  func(context.Context, *models.Post) error
	updateFn  func(context.Context, *models.Post) error
	deleteFn  func(context.Context, *models.Post) error

	calls map[string]int
}

func (s *postRepoStub) GetAll(ctx context.Context) ([]models.Post, error) {
	s.calls["GetAll"]++
	return s.getAllFn(ctx)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	s.calls["GetByID"]++
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	s.calls["Create"]++
	return s.createFn(ctx, post)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	s.calls["Update"]++
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, post *models.Post) error {
	s.calls["Delete"]++
	return s.deleteFn(ctx, post)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		getAllFn:  func(_ context.Context) ([]models.Post, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Post, error) { return &models.Post{ID: id}, nil },
		createFn: func(_ context.Context, p *models.Post) error {
			if p.ID == uuid.Nil {
				p.ID = uuid.New()
			}
			return nil
		},
		updateFn: func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn: func(_ context.Context, _ *models.Post) error { return nil },
		calls:    map[string]int{},
	}
}

func missingPostRepo() *postRepoStub {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ uuid.UUID) (*models.Post, error) { return nil, nil }
	return repo
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	getAllFn  func(context.Context) ([]models.Comment, error)
	getByIDFn func(context.Context, uuid.UUID) (*models.Comment, error)
	createFn  func(context.Context, *models.Comment) error
	updateFn  func(context.Context, *models.Comment) error
	deleteFn  func(context.Context, *models.Comment) error

	calls map[string]int
}

func (s *commentRepoStub) GetAll(ctx context.Context) ([]models.Comment, error) {
	s.calls["GetAll"]++
	return s.getAllFn(ctx)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	s.calls["GetByID"]++
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	s.calls["Create"]++
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	s.calls["Update"]++
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, comment *models.Comment) error {
	s.calls["Delete"]++
	return s.deleteFn(ctx, comment)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		getAllFn:  func(_ context.Context) ([]models.Comment, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		createFn: func(_ context.Context, c *models.Comment) error {
			if c.ID == uuid.Nil {
				c.ID = uuid.New()
			}
			return nil
		},
		updateFn: func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn: func(_ context.Context, _ *models.Comment) error { return nil },
		calls:    map[string]int{},
	}
}

func assertRequiredField(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, models.CodeRequiredField, appErr.Code)
	require.Equal(t, message, appErr.Message)
}

func assertNotFound(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, models.CodeNotFound, appErr.Code)
	require.Equal(t, message, appErr.Message)
}
