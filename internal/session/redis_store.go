package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mkravets/userhub/internal/domain/entity"
)

// RedisStore keeps each session as a hash at session:<id> with a TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string { return "session:" + id }

func (s *RedisStore) Create(ctx context.Context, sess Session) (string, error) {
	id, err := NewID()
	if err != nil {
		return "", err
	}
	key := sessionKey(id)
	fields := map[string]any{
		"user_id":    sess.UserID,
		"role":       string(sess.Role),
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.rdb.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &Session{
		UserID: data["user_id"],
		Role:   entity.Role(data["role"]),
	}, nil
}

func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}

var _ Store = (*RedisStore)(nil)
