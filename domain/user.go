package domain

import (
	"context"
	"time"
)

// User represents an account created through the OAuth login flow.
// Credentials are updated in place whenever the provider issues a new
// token pair for the same platform identifier.
type User struct {
	ID          int64     // Unique identifier
	TwitterID   string    // Identifier assigned by the platform, unique
	Name        string    // Display name from the provider profile
	AccessToken string    // OAuth1 access token
	TokenSecret string    // OAuth1 token secret
	CreatedAt   time.Time // Account creation timestamp
	UpdatedAt   time.Time // Last credential update timestamp
}

// Credentials returns the user's stored OAuth token pair.
func (u User) Credentials() Credentials {
	return Credentials{
		AccessToken: u.AccessToken,
		TokenSecret: u.TokenSecret,
	}
}

// AuthProfile is the tuple the authentication flow produces on every
// successful login.
type AuthProfile struct {
	TwitterID   string
	Name        string
	AccessToken string
	TokenSecret string
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their internal ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByTwitterID retrieves a user by their platform identifier.
	// Returns ErrNotFound if the user doesn't exist.
	GetByTwitterID(ctx context.Context, twitterID string) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	// Returns ErrConflict if the platform identifier is already taken.
	Insert(ctx context.Context, u *User) error

	// UpdateCredentials replaces the stored token pair of an existing user.
	UpdateCredentials(ctx context.Context, u *User) error

	// Delete permanently removes a user account.
	// Returns ErrNotFound if the user doesn't exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}

// UserUsecase defines the business logic contract for account handling.
type UserUsecase interface {
	// Login upserts the account for a successful authentication: creates
	// the user on first sight, otherwise refreshes the stored credentials
	// only when the provider issued a different pair.
	Login(ctx context.Context, profile AuthProfile) (User, error)

	// Logout permanently removes the account row. This is account
	// destruction, not session expiry.
	Logout(ctx context.Context, user User) error

	// GetByID resolves a session's user id to the account.
	GetByID(ctx context.Context, id int64) (User, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}
