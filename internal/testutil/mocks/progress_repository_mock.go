package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) LastDay(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressRepository) SetLastDay(ctx context.Context, day int) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}
