package tweet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/favsync/favsync/domain"
	"github.com/favsync/favsync/domain/mocks"
	"github.com/favsync/favsync/internal/usecase/tweet"
)

func testObservation() domain.TweetObservation {
	return domain.TweetObservation{
		TwitterID:      "42",
		Text:           "hello",
		UserScreenName: "someone",
	}
}

func TestObserveCreatesOnFirstSight(t *testing.T) {
	obs := testObservation()

	repo := new(mocks.TweetRepository)
	repo.On("GetByTwitterID", mock.Anything, obs.TwitterID).Return(domain.Tweet{}, domain.ErrNotFound)
	repo.On("Store", mock.Anything, mock.MatchedBy(func(tw *domain.Tweet) bool {
		return tw.TwitterID == obs.TwitterID && tw.Text == obs.Text
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Tweet).ID = 3
	}).Return(nil)

	svc := tweet.NewService(repo)
	res, err := svc.Observe(context.Background(), obs)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.ID)
	repo.AssertExpectations(t)
}

func TestObserveKnownTweetIsNoOp(t *testing.T) {
	obs := testObservation()
	existing := domain.Tweet{ID: 3, TwitterID: obs.TwitterID}

	repo := new(mocks.TweetRepository)
	repo.On("GetByTwitterID", mock.Anything, obs.TwitterID).Return(existing, nil)

	svc := tweet.NewService(repo)
	res, err := svc.Observe(context.Background(), obs)
	require.NoError(t, err)
	assert.Equal(t, existing, res)
	repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestObserveInsertRaceRefetches(t *testing.T) {
	obs := testObservation()
	winner := domain.Tweet{ID: 5, TwitterID: obs.TwitterID}

	repo := new(mocks.TweetRepository)
	repo.On("GetByTwitterID", mock.Anything, obs.TwitterID).Return(domain.Tweet{}, domain.ErrNotFound).Once()
	repo.On("Store", mock.Anything, mock.Anything).Return(domain.ErrConflict)
	repo.On("GetByTwitterID", mock.Anything, obs.TwitterID).Return(winner, nil).Once()

	svc := tweet.NewService(repo)
	res, err := svc.Observe(context.Background(), obs)
	require.NoError(t, err)
	assert.Equal(t, winner, res)
}

func TestObserveRejectsEmptyID(t *testing.T) {
	svc := tweet.NewService(new(mocks.TweetRepository))
	_, err := svc.Observe(context.Background(), domain.TweetObservation{Text: "no id"})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}
