package domain

import "context"

// Credentials is a user-scoped OAuth1 access token pair.
type Credentials struct {
	AccessToken string
	TokenSecret string
}

// TwitterClient performs remote API calls on behalf of one user.
type TwitterClient interface {
	// CreateFavorite likes the tweet with the given platform identifier.
	CreateFavorite(ctx context.Context, twitterID string) error
}

// TwitterClientFactory builds a per-user client from stored credentials
// on demand. Clients are cheap and stateless; there is no shared
// client registry.
type TwitterClientFactory interface {
	ClientFor(user User) TwitterClient
}

// AccountVerifier resolves a freshly issued token pair to the account
// profile it belongs to. Used once per OAuth callback.
type AccountVerifier interface {
	VerifyCredentials(ctx context.Context, creds Credentials) (AuthProfile, error)
}

// TweetStream delivers raw tweet observations from the platform's
// filtered stream.
type TweetStream interface {
	// Listen connects and delivers observations on the returned channel
	// until the connection drops or ctx is canceled. The channel is
	// closed when the connection ends.
	Listen(ctx context.Context) (<-chan TweetObservation, error)
}
