package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/favsync/favsync/domain"
	"github.com/favsync/favsync/internal/repository/mysql/model"
)

type tweetRepository struct {
	DB *gorm.DB
}

var _ domain.TweetRepository = (*tweetRepository)(nil)

// NewTweetRepository will create an implementation of domain.TweetRepository
func NewTweetRepository(db *gorm.DB) *tweetRepository {
	return &tweetRepository{db}
}

func (m *tweetRepository) GetByTwitterID(ctx context.Context, twitterID string) (res domain.Tweet, err error) {
	var tweet model.Tweet
	err = m.DB.WithContext(ctx).First(&tweet, "twitter_id = ?", twitterID).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = tweet.ToDomain()
	return
}

func (m *tweetRepository) Store(ctx context.Context, t *domain.Tweet) error {
	tweetModel := model.NewTweetFromDomain(t)
	result := m.DB.WithContext(ctx).Create(&tweetModel)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return domain.ErrConflict
		}
		return result.Error
	}
	t.ID = tweetModel.ID
	t.CreatedAt = tweetModel.CreatedAt
	return nil
}
