package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/muhammadheryan/warung-order/cmd/redis"
)

// ErrKeyNotFound is returned when a key is missing or expired.
var ErrKeyNotFound = errors.New("redis: key not found")

var errNoClient = errors.New("redis: client not initialized")

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetSession(ctx context.Context, sessionID, subject string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", errNoClient
	}
	val, err := client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores a key/value pair without expiration
func (r *redis) Set(ctx context.Context, key string, value interface{}) error {
	client := redisclient.Get()
	if client == nil {
		return errNoClient
	}
	return client.Set(ctx, key, value, 0).Err()
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return errNoClient
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return errNoClient
	}
	return client.Del(ctx, key).Err()
}

// SetSession stores the session subject with TTL
func (r *redis) SetSession(ctx context.Context, sessionID, subject string, ttl time.Duration) error {
	return r.SetWithTTL(ctx, sessionKey(sessionID), subject, ttl)
}

// GetSession retrieves the subject stored for a session
func (r *redis) GetSession(ctx context.Context, sessionID string) (string, error) {
	return r.Get(ctx, sessionKey(sessionID))
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Delete(ctx, sessionKey(sessionID))
}
