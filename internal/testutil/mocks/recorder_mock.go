package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/flashcards/internal/journal"
)

// MockRecorder is a mock implementation of study.Recorder
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, ev journal.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}
