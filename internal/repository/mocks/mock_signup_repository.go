package mocks

import (
	"context"
	"time"

	"signupapi/internal/model"
	"signupapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockSignupRepository struct {
	mock.Mock
}

func (m *MockSignupRepository) Create(ctx context.Context, s *model.Signup) (*model.Signup, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Signup), args.Error(1)
}

func (m *MockSignupRepository) FindByID(ctx context.Context, id string) (*model.Signup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Signup), args.Error(1)
}

func (m *MockSignupRepository) FindByEmail(ctx context.Context, email string) (*model.Signup, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Signup), args.Error(1)
}

func (m *MockSignupRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Signup], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Signup]), args.Error(1)
}

func (m *MockSignupRepository) CreatedBetween(ctx context.Context, from, to time.Time) ([]model.Signup, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Signup), args.Error(1)
}
