package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legendidle/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, params domain.CreateUserParams) (*domain.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, form domain.RegisterForm, current *domain.SessionUser) (*domain.SessionUser, bool, error) {
	args := m.Called(ctx, form, current)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.SessionUser), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, username string, password string) (*domain.SessionUser, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.SessionUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) GuestUser() *domain.SessionUser {
	args := m.Called()
	return args.Get(0).(*domain.SessionUser)
}

func (m *MockAuthUsecase) CheckAvailability(ctx context.Context, username string, email string) (domain.AvailabilityResponse, error) {
	args := m.Called(ctx, username, email)
	return args.Get(0).(domain.AvailabilityResponse), args.Error(1)
}
