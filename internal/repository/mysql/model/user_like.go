package model

import (
	"time"

	"github.com/favsync/favsync/domain"
)

type UserLike struct {
	TweetID   int64     `gorm:"column:tweet_id;not null;uniqueIndex:idx_user_tweet"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_tweet"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (UserLike) TableName() string {
	return "user_likes"
}

func NewUserLikeFromDomain(ul domain.UserLike) UserLike {
	return UserLike{
		TweetID:   ul.TweetID,
		UserID:    ul.UserID,
		CreatedAt: ul.CreatedAt,
	}
}
