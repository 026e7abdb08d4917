package like

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/favsync/favsync/domain"
)

type Service struct {
	likeRepo      domain.LikeRepository
	clients       domain.TwitterClientFactory
	remoteRetries int
}

var _ domain.LikeUsecase = (*Service)(nil)

// NewService will create a new like service object.
// remoteRetries is the number of extra remote attempts per tweet after
// the first one fails; the local record is written regardless.
func NewService(likeRepo domain.LikeRepository, clients domain.TwitterClientFactory, remoteRetries int) *Service {
	if remoteRetries < 0 {
		remoteRetries = 0
	}
	return &Service{
		likeRepo:      likeRepo,
		clients:       clients,
		remoteRetries: remoteRetries,
	}
}

func (s *Service) PendingForUser(ctx context.Context, user domain.User) ([]domain.Tweet, error) {
	return s.likeRepo.PendingForUser(ctx, user.ID)
}

func (s *Service) CountForUser(ctx context.Context, user domain.User) (int64, error) {
	return s.likeRepo.CountForUser(ctx, user.ID)
}

func (s *Service) CountTotal(ctx context.Context) (int64, error) {
	return s.likeRepo.CountTotal(ctx)
}

// LikeAllPending resolves the user's pending set and fans out one remote
// like attempt per tweet. Every attempted tweet gets a local like record
// whether or not the remote call succeeded: the remote failure modes
// (rate limit, already liked, transient network error) are not worth
// distinguishing from success, and an unrecorded tweet would be retried
// on every future invocation. Two concurrent invocations for the same
// user may race on the record writes; the unique (user, tweet)
// constraint settles the race and the loser treats it as a no-op.
func (s *Service) LikeAllPending(ctx context.Context, user domain.User) error {
	pending, err := s.likeRepo.PendingForUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	logrus.Infof("user %s liking %d pending tweets", user.TwitterID, len(pending))

	client := s.clients.ClientFor(user)

	g := new(errgroup.Group)
	for _, tweet := range pending {
		g.Go(func() error {
			s.likeOne(ctx, client, user, tweet)
			return nil
		})
	}
	// per-tweet errors never surface; Wait only synchronizes completion
	_ = g.Wait()

	return nil
}

func (s *Service) likeOne(ctx context.Context, client domain.TwitterClient, user domain.User, tweet domain.Tweet) {
	var remoteErr error
	for attempt := 0; attempt <= s.remoteRetries; attempt++ {
		remoteErr = client.CreateFavorite(ctx, tweet.TwitterID)
		if remoteErr == nil {
			break
		}
	}
	if remoteErr != nil {
		logrus.Warnf("remote like failed for tweet %s (user %s): %v", tweet.TwitterID, user.TwitterID, remoteErr)
	}

	record := domain.UserLike{
		TweetID:   tweet.ID,
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := s.likeRepo.Create(ctx, record); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// lost a race with a concurrent invocation, already recorded
			return
		}
		logrus.Errorf("failed to record like for tweet %d (user %d): %v", tweet.ID, user.ID, err)
	}
}
