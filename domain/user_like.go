package domain

import (
	"context"
	"time"
)

// UserLike is representing a like record: durable proof that a user
// attempted a like on a tweet. At most one record exists per
// (user, tweet) pair; the record is written even when the remote like
// call fails, so repeated runs never retry the same tweet.
type UserLike struct {
	TweetID   int64
	UserID    int64
	CreatedAt time.Time
}

// LikeRepository defines the contract for like-record persistence.
type LikeRepository interface {
	// Create stores a like record.
	// Returns ErrConflict if a record for this (user, tweet) pair
	// already exists; callers must treat that as "already liked".
	Create(ctx context.Context, record UserLike) error

	// CountForUser returns the number of like records of one user.
	CountForUser(ctx context.Context, userID int64) (int64, error)

	// CountTotal returns the number of like records across all users.
	CountTotal(ctx context.Context) (int64, error)

	// PendingForUser returns every tweet the given user has no like
	// record for, in insertion order. Computed fresh on every call.
	PendingForUser(ctx context.Context, userID int64) ([]Tweet, error)
}

// LikeUsecase defines the business logic contract for the bulk-like flow.
type LikeUsecase interface {
	// PendingForUser lists the tweets the user has not liked yet.
	PendingForUser(ctx context.Context, user User) ([]Tweet, error)

	// LikeAllPending likes every pending tweet of the user against the
	// remote API and records each attempt locally. Per-tweet remote
	// failures are logged and swallowed; the returned error only
	// reflects a failure to resolve the pending set itself.
	LikeAllPending(ctx context.Context, user User) error

	// CountForUser returns the number of like records of one user.
	CountForUser(ctx context.Context, user User) (int64, error)

	// CountTotal returns the number of like records across all users.
	CountTotal(ctx context.Context) (int64, error)
}
