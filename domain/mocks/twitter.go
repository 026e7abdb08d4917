package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/favsync/favsync/domain"
)

type TwitterClient struct {
	mock.Mock
}

func (m *TwitterClient) CreateFavorite(ctx context.Context, twitterID string) error {
	args := m.Called(ctx, twitterID)
	return args.Error(0)
}

type TwitterClientFactory struct {
	mock.Mock
}

func (m *TwitterClientFactory) ClientFor(user domain.User) domain.TwitterClient {
	args := m.Called(user)
	return args.Get(0).(domain.TwitterClient)
}

type AccountVerifier struct {
	mock.Mock
}

func (m *AccountVerifier) VerifyCredentials(ctx context.Context, creds domain.Credentials) (domain.AuthProfile, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(domain.AuthProfile), args.Error(1)
}
