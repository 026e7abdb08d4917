package user

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/favsync/favsync/domain"
)

type service struct {
	userRepo domain.UserRepository
}

var _ domain.UserUsecase = (*service)(nil)

func NewService(userRepo domain.UserRepository) *service {
	return &service{
		userRepo: userRepo,
	}
}

// Login upserts the account for a successful authentication. The
// credential update is dirty-checked: an identical token pair causes no
// write at all.
func (s *service) Login(ctx context.Context, profile domain.AuthProfile) (domain.User, error) {
	existing, err := s.userRepo.GetByTwitterID(ctx, profile.TwitterID)
	if err == nil {
		if existing.AccessToken == profile.AccessToken && existing.TokenSecret == profile.TokenSecret {
			return existing, nil
		}

		logrus.Infof("updating credentials for user %s", profile.TwitterID)
		existing.AccessToken = profile.AccessToken
		existing.TokenSecret = profile.TokenSecret
		if err := s.userRepo.UpdateCredentials(ctx, &existing); err != nil {
			return domain.User{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}

	logrus.Infof("creating user %s", profile.TwitterID)
	u := domain.User{
		TwitterID:   profile.TwitterID,
		Name:        profile.Name,
		AccessToken: profile.AccessToken,
		TokenSecret: profile.TokenSecret,
	}
	err = s.userRepo.Insert(ctx, &u)
	if err == nil {
		return u, nil
	}
	if errors.Is(err, domain.ErrConflict) {
		// two callbacks for the same account raced on the insert
		return s.userRepo.GetByTwitterID(ctx, profile.TwitterID)
	}
	return domain.User{}, err
}

// Logout permanently removes the account row. Like records of the user
// are left behind; they are only ever read joined against the user row,
// so the orphans are inert.
func (s *service) Logout(ctx context.Context, user domain.User) error {
	err := s.userRepo.Delete(ctx, user.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}
