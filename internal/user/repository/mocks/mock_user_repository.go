package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	uDomain "github.com/freshgrocer/storefront-service/internal/user/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *uDomain.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = "mock-user-id"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*uDomain.User, error) {
	args := m.Called(ctx, identifier)
	if res := args.Get(0); res != nil {
		return res.(*uDomain.User), args.Error(1)
	}
	return nil, args.Error(1)
}
