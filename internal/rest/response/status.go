package response

import "github.com/favsync/favsync/domain"

type StatusUser struct {
	ID        int64  `json:"id"`
	TwitterID string `json:"twitter_id"`
	Name      string `json:"name"`
}

// Status is the home payload: global counters plus, for a logged-in
// user, their like count and pending tweets.
type Status struct {
	User             *StatusUser `json:"user,omitempty"`
	LikedTweets      *int64      `json:"liked_tweets,omitempty"`
	PendingTweets    []Tweet     `json:"pending_tweets,omitempty"`
	TotalLikedTweets int64       `json:"total_liked_tweets"`
	TwitterClients   int64       `json:"twitter_clients"`
}

func NewStatusUserFromDomain(u *domain.User) *StatusUser {
	return &StatusUser{
		ID:        u.ID,
		TwitterID: u.TwitterID,
		Name:      u.Name,
	}
}
