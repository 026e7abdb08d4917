package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/favsync/favsync/domain"
	"github.com/favsync/favsync/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

// NewLikeRepository will create an implementation of domain.LikeRepository
func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

func (m *likeRepository) Create(ctx context.Context, record domain.UserLike) error {
	userLike := model.NewUserLikeFromDomain(record)
	result := m.DB.WithContext(ctx).Create(&userLike)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return domain.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (m *likeRepository) CountForUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.UserLike{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (m *likeRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.UserLike{}).Count(&count).Error
	return count, err
}

// PendingForUser selects the tweets the user has no like record for as a
// single anti-join, oldest first. The result is never cached: a stale
// pending set would cause missed or duplicate like attempts.
func (m *likeRepository) PendingForUser(ctx context.Context, userID int64) ([]domain.Tweet, error) {
	liked := m.DB.Model(&model.UserLike{}).
		Select("tweet_id").
		Where("user_id = ?", userID)

	var tweets []model.Tweet
	err := m.DB.WithContext(ctx).
		Model(&model.Tweet{}).
		Where("id NOT IN (?)", liked).
		Order("id").
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Tweet, len(tweets))
	for i := range tweets {
		res[i] = tweets[i].ToDomain()
	}
	return res, nil
}
