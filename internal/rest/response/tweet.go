package response

import (
	"github.com/favsync/favsync/domain"
)

type Tweet struct {
	ID             int64  `json:"id"`
	TwitterID      string `json:"twitter_id"`
	Text           string `json:"text"`
	UserScreenName string `json:"user_screen_name"`
	CreatedAt      string `json:"created_at"`
}

// FromDomain: Domain -> Response
func NewTweetFromDomain(t *domain.Tweet) Tweet {
	return Tweet{
		ID:             t.ID,
		TwitterID:      t.TwitterID,
		Text:           t.Text,
		UserScreenName: t.UserScreenName,
		CreatedAt:      t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
