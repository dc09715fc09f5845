package server

import (
	"context"

	"blogapi/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPostAPI is a mock of the PostAPI interface
type MockPostAPI struct {
	mock.Mock
}

func (m *MockPostAPI) GetAll(ctx context.Context) (dto.Result[[]dto.Post], error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.Result[[]dto.Post]), args.Error(1)
}

func (m *MockPostAPI) Get(ctx context.Context, id uuid.UUID) (dto.Result[*dto.Post], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.Result[*dto.Post]), args.Error(1)
}

func (m *MockPostAPI) Create(ctx context.Context, in dto.PostCreate) (dto.Result[*dto.Post], error) {
	args := m.Called(ctx, in)
	return args.Get(0).(dto.Result[*dto.Post]), args.Error(1)
}

func (m *MockPostAPI) Update(ctx context.Context, in dto.Post) (dto.Result[*dto.Post], error) {
	args := m.Called(ctx, in)
	return args.Get(0).(dto.Result[*dto.Post]), args.Error(1)
}

func (m *MockPostAPI) Delete(ctx context.Context, id uuid.UUID) (dto.Result[string], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.Result[string]), args.Error(1)
}

func (m *MockPostAPI) GetComments(ctx context.Context, id uuid.UUID) (dto.Result[[]dto.Comment], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.Result[[]dto.Comment]), args.Error(1)
}

// MockCommentAPI is a mock of the CommentAPI interface
type MockCommentAPI struct {
	mock.Mock
}

func (m *MockCommentAPI) Get(ctx context.Context, id uuid.UUID) (dto.Result[*dto.Comment], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.Result[*dto.Comment]), args.Error(1)
}

func (m *MockCommentAPI) Create(ctx context.Context, in dto.CommentCreate) (dto.Result[*dto.Comment], error) {
	args := m.Called(ctx, in)
	return args.Get(0).(dto.Result[*dto.Comment]), args.Error(1)
}

func (m *MockCommentAPI) Update(ctx context.Context, in dto.Comment) (dto.Result[*dto.Comment], error) {
	args := m.Called(ctx, in)
	return args.Get(0).(dto.Result[*dto.Comment]), args.Error(1)
}

func (m *MockCommentAPI) Delete(ctx context.Context, id uuid.UUID) (dto.Result[string], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.Result[string]), args.Error(1)
}

func (m *MockCommentAPI) GetByPostID(ctx context.Context, postID uuid.UUID) (dto.Result[[]dto.Comment], error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(dto.Result[[]dto.Comment]), args.Error(1)
}
