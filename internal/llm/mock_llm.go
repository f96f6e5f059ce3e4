package llm

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client using testify/mock.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) ExtractCompany(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}

func (m *MockClient) Answer(ctx context.Context, question, contextText, kind string) (string, error) {
	args := m.Called(ctx, question, contextText, kind)
	return args.String(0), args.Error(1)
}
