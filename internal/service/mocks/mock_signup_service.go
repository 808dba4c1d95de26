package mocks

import (
	"context"

	"signupapi/internal/model"
	"signupapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSignupService struct {
	mock.Mock
}

func (m *MockSignupService) Create(ctx context.Context, name, email string) (*model.Signup, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Signup), args.Error(1)
}

func (m *MockSignupService) List(ctx context.Context, limit, offset int) (*service.SignupListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SignupListResult), args.Error(1)
}

func (m *MockSignupService) Get(ctx context.Context, id string) (*model.Signup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Signup), args.Error(1)
}
