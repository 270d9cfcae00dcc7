package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/junhyuk/worddrill/internal/models"
)

// MockNoteRepository is a mock implementation of repository.NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Append(ctx context.Context, day int, notes []models.IncorrectAnswer) error {
	args := m.Called(ctx, day, notes)
	return args.Error(0)
}

func (m *MockNoteRepository) ForDay(ctx context.Context, day int) ([]models.IncorrectNote, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.IncorrectNote), args.Error(1)
}

func (m *MockNoteRepository) Days(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}
