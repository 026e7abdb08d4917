package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/favsync/favsync/domain"
)

type LikeUsecase struct {
	mock.Mock
}

func (m *LikeUsecase) PendingForUser(ctx context.Context, user domain.User) ([]domain.Tweet, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tweet), args.Error(1)
}

func (m *LikeUsecase) LikeAllPending(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *LikeUsecase) CountForUser(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LikeUsecase) CountTotal(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) Login(ctx context.Context, profile domain.AuthProfile) (domain.User, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserUsecase) Logout(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserUsecase) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserUsecase) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type TweetUsecase struct {
	mock.Mock
}

func (m *TweetUsecase) Observe(ctx context.Context, obs domain.TweetObservation) (domain.Tweet, error) {
	args := m.Called(ctx, obs)
	return args.Get(0).(domain.Tweet), args.Error(1)
}
