package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/favsync/favsync/domain"
)

const (
	KeySession       = "session:%s"
	KeyRequestSecret = "oauth:request:%s"

	// request secrets only need to survive the provider round-trip
	requestSecretTTL = 10 * time.Minute

	sessionIDBytes = 32
)

type sessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.SessionStore = (*sessionStore)(nil)

// NewSessionStore will create a redis-backed implementation of domain.SessionStore
func NewSessionStore(client *redis.Client, ttl time.Duration) *sessionStore {
	return &sessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *sessionStore) Create(ctx context.Context, userID int64) (string, error) {
	sid, err := newSessionID()
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf(KeySession, sid)
	if err := s.client.Set(ctx, key, userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *sessionStore) Get(ctx context.Context, sessionID string) (int64, error) {
	key := fmt.Sprintf(KeySession, sessionID)
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrNotFound
	} else if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return userID, nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(KeySession, sessionID)
	return s.client.Del(ctx, key).Err()
}

func (s *sessionStore) SaveRequestSecret(ctx context.Context, requestToken, requestSecret string) error {
	key := fmt.Sprintf(KeyRequestSecret, requestToken)
	return s.client.Set(ctx, key, requestSecret, requestSecretTTL).Err()
}

func (s *sessionStore) TakeRequestSecret(ctx context.Context, requestToken string) (string, error) {
	key := fmt.Sprintf(KeyRequestSecret, requestToken)
	val, err := s.client.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	} else if err != nil {
		return "", err
	}
	return val, nil
}

func newSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
