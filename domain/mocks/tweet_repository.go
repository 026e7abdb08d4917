package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/favsync/favsync/domain"
)

type TweetRepository struct {
	mock.Mock
}

func (m *TweetRepository) GetByTwitterID(ctx context.Context, twitterID string) (domain.Tweet, error) {
	args := m.Called(ctx, twitterID)
	return args.Get(0).(domain.Tweet), args.Error(1)
}

func (m *TweetRepository) Store(ctx context.Context, t *domain.Tweet) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
