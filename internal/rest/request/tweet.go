package request

import "github.com/favsync/favsync/domain"

type Tweet struct {
	TwitterID      string `json:"twitter_id" binding:"required"`
	Text           string `json:"text"`
	UserScreenName string `json:"user_screen_name"`
}

// ToDomain: Request -> Domain
func (r *Tweet) ToDomain() domain.TweetObservation {
	return domain.TweetObservation{
		TwitterID:      r.TwitterID,
		Text:           r.Text,
		UserScreenName: r.UserScreenName,
	}
}
