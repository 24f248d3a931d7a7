package printforge

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// DefaultTokenKey is the key the token is stored under. It matches the slot
// name the original web client used, so both can share one session.
const DefaultTokenKey = "authToken"

// RedisTokenStore keeps the token in Redis so every process pointed at the
// same instance observes one shared session slot. Writes are
// last-writer-wins; other processes catch up through the controller's store
// watcher.
type RedisTokenStore struct {
	client *redis.Client
	key    string
}

var _ TokenStore = (*RedisTokenStore)(nil)

// NewRedisTokenStore connects to Redis and verifies the connection. An
// empty key falls back to DefaultTokenKey.
func NewRedisTokenStore(addr, password string, db int, key string) (*RedisTokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	if key == "" {
		key = DefaultTokenKey
	}

	return &RedisTokenStore{client: client, key: key}, nil
}

func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key, token, 0).Err()
}

func (s *RedisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// Close releases the underlying Redis connection.
func (s *RedisTokenStore) Close() error {
	return s.client.Close()
}
