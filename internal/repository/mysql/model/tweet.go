package model

import (
	"time"

	"github.com/favsync/favsync/domain"
)

type Tweet struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	TwitterID      string    `gorm:"column:twitter_id;type:varchar(32);not null;uniqueIndex"`
	Text           string    `gorm:"type:varchar(512)"`
	UserScreenName string    `gorm:"column:user_screen_name;type:varchar(64)"`
	CreatedAt      time.Time `gorm:"type:datetime"`
}

func (Tweet) TableName() string {
	return "tweets"
}

func (m *Tweet) ToDomain() domain.Tweet {
	return domain.Tweet{
		ID:             m.ID,
		TwitterID:      m.TwitterID,
		Text:           m.Text,
		UserScreenName: m.UserScreenName,
		CreatedAt:      m.CreatedAt,
	}
}

func NewTweetFromDomain(t *domain.Tweet) *Tweet {
	return &Tweet{
		ID:             t.ID,
		TwitterID:      t.TwitterID,
		Text:           t.Text,
		UserScreenName: t.UserScreenName,
		CreatedAt:      t.CreatedAt,
	}
}
