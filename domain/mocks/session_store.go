package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Create(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *SessionStore) Get(ctx context.Context, sessionID string) (int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *SessionStore) SaveRequestSecret(ctx context.Context, requestToken, requestSecret string) error {
	args := m.Called(ctx, requestToken, requestSecret)
	return args.Error(0)
}

func (m *SessionStore) TakeRequestSecret(ctx context.Context, requestToken string) (string, error) {
	args := m.Called(ctx, requestToken)
	return args.String(0), args.Error(1)
}
