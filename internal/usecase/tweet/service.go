package tweet

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/favsync/favsync/domain"
)

type service struct {
	tweetRepo domain.TweetRepository
}

var _ domain.TweetUsecase = (*service)(nil)

func NewService(tweetRepo domain.TweetRepository) *service {
	return &service{
		tweetRepo: tweetRepo,
	}
}

// Observe find-or-creates the tweet for a stream observation. A Store
// conflict means another observer won the insert race; the stored row
// is refetched and returned.
func (s *service) Observe(ctx context.Context, obs domain.TweetObservation) (domain.Tweet, error) {
	if obs.TwitterID == "" {
		return domain.Tweet{}, domain.ErrBadParamInput
	}

	existing, err := s.tweetRepo.GetByTwitterID(ctx, obs.TwitterID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Tweet{}, err
	}

	t := domain.Tweet{
		TwitterID:      obs.TwitterID,
		Text:           obs.Text,
		UserScreenName: obs.UserScreenName,
	}
	err = s.tweetRepo.Store(ctx, &t)
	if err == nil {
		logrus.Infof("tweet %s from %s: %s", t.TwitterID, t.UserScreenName, t.Text)
		return t, nil
	}
	if errors.Is(err, domain.ErrConflict) {
		return s.tweetRepo.GetByTwitterID(ctx, obs.TwitterID)
	}
	return domain.Tweet{}, err
}
