package domain

import (
	"context"
	"time"
)

// Tweet is representing a tweet observed on the filtered stream.
type Tweet struct {
	ID             int64     // Internal surrogate identifier
	TwitterID      string    // Identifier assigned by the platform (id_str), unique
	Text           string    // Tweet body, as observed
	UserScreenName string    // Screen name of the tweet's author
	CreatedAt      time.Time // First-observation timestamp
}

// TweetObservation is a raw tweet as it arrives from the stream,
// before it is stored.
type TweetObservation struct {
	TwitterID      string
	Text           string
	UserScreenName string
}

// TweetRepository defines the contract for tweet data persistence.
type TweetRepository interface {
	// GetByTwitterID retrieves a tweet by its platform identifier.
	// Returns ErrNotFound if no tweet with that identifier is stored.
	GetByTwitterID(ctx context.Context, twitterID string) (Tweet, error)

	// Store creates a new tweet record.
	// Backfills ID and CreatedAt on success.
	// Returns ErrConflict if the platform identifier is already stored.
	Store(ctx context.Context, t *Tweet) error
}

// TweetUsecase defines the business logic contract for tweet ingestion.
type TweetUsecase interface {
	// Observe records a tweet observation, creating the tweet on first
	// sight. Observing an already-known tweet is a no-op that returns
	// the stored tweet.
	Observe(ctx context.Context, obs TweetObservation) (Tweet, error)
}
