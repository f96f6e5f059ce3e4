package pdftext

import "github.com/stretchr/testify/mock"

// MockExtractor is a mock implementation of Extractor using testify/mock.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Pages(path string) ([]string, error) {
	args := m.Called(path)
	if pages, ok := args.Get(0).([]string); ok {
		return pages, args.Error(1)
	}
	return nil, args.Error(1)
}
