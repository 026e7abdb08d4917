package model

import (
	"time"

	"github.com/favsync/favsync/domain"
)

type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	TwitterID   string    `gorm:"column:twitter_id;type:varchar(32);not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(128);not null"`
	AccessToken string    `gorm:"column:access_token;type:varchar(256);not null"`
	TokenSecret string    `gorm:"column:token_secret;type:varchar(256);not null"`
	CreatedAt   time.Time `gorm:"type:datetime"`
	UpdatedAt   time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:          m.ID,
		TwitterID:   m.TwitterID,
		Name:        m.Name,
		AccessToken: m.AccessToken,
		TokenSecret: m.TokenSecret,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:          u.ID,
		TwitterID:   u.TwitterID,
		Name:        u.Name,
		AccessToken: u.AccessToken,
		TokenSecret: u.TokenSecret,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
