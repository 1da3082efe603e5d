package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalsite/internal/model"
)

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) List(ctx context.Context) ([]model.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *MockBlogService) Get(ctx context.Context, id string) (*model.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}
