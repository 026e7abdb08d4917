package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/favsync/favsync/domain"
)

type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Create(ctx context.Context, record domain.UserLike) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *LikeRepository) CountForUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LikeRepository) CountTotal(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LikeRepository) PendingForUser(ctx context.Context, userID int64) ([]domain.Tweet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tweet), args.Error(1)
}
