// Package service contains test doubles for the domain service interfaces.
package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cinvoluntario/internal/domain/entity"
	"cinvoluntario/internal/domain/service"
)

// MockAuthBackend is a testify double for service.AuthBackend.
type MockAuthBackend struct {
	mock.Mock
}

var _ service.AuthBackend = (*MockAuthBackend)(nil)

func (m *MockAuthBackend) Authenticate(ctx context.Context, cred entity.Credential) (entity.Token, error) {
	args := m.Called(ctx, cred)

	return args.Get(0).(entity.Token), args.Error(1)
}

func (m *MockAuthBackend) CreateAccount(ctx context.Context, input service.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockAuthBackend) FetchSelf(ctx context.Context) (*entity.User, error) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockAuthBackend) Invalidate(ctx context.Context, token string) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

// MockTokenStore is a testify double for service.TokenStore.
type MockTokenStore struct {
	mock.Mock
}

var _ service.TokenStore = (*MockTokenStore)(nil)

func (m *MockTokenStore) Load(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) Save(ctx context.Context, token string) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *MockTokenStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
