package domain

import "context"

// SessionStore is the backend for login sessions and for the short-lived
// request secrets of the OAuth handshake.
type SessionStore interface {
	// Create opens a session for the user and returns its opaque id.
	Create(ctx context.Context, userID int64) (string, error)

	// Get resolves a session id to the user id it was opened for.
	// Returns ErrNotFound for unknown or expired sessions.
	Get(ctx context.Context, sessionID string) (int64, error)

	// Delete closes a session. Deleting an unknown session is a no-op.
	Delete(ctx context.Context, sessionID string) error

	// SaveRequestSecret stores the request secret of an in-flight OAuth
	// handshake, keyed by its request token.
	SaveRequestSecret(ctx context.Context, requestToken, requestSecret string) error

	// TakeRequestSecret returns and removes a stored request secret.
	// Returns ErrNotFound if the handshake is unknown or expired.
	TakeRequestSecret(ctx context.Context, requestToken string) (string, error)
}
