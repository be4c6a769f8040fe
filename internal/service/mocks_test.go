package service

import (
	"context"

	"quiz-validator/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockDatasetLoader ---
type MockDatasetLoader struct {
	mock.Mock
}

func (m *MockDatasetLoader) Load(ctx context.Context, path string) (*domain.QuizDataset, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizDataset), args.Error(1)
}
