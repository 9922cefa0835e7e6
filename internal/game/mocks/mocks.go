package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legendidle/domain"
)

type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) UpdateProgress(ctx context.Context, userID string, progress domain.Progress) (domain.Progress, error) {
	args := m.Called(ctx, userID, progress)
	return args.Get(0).(domain.Progress), args.Error(1)
}

type MockGameUsecase struct {
	mock.Mock
}

func (m *MockGameUsecase) Train(ctx context.Context, user *domain.SessionUser, skill string) error {
	args := m.Called(ctx, user, skill)
	return args.Error(0)
}
