package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/freshgrocer/storefront-service/internal/platform/notifier"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(title, description string, severity notifier.Severity) {
	m.Called(title, description, severity)
}
