package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

const redisKeyPrefix = "session:"

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// ConnectRedis builds a client and fails fast if the server is unreachable.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	return s.rdb.Set(ctx, redisKeyPrefix+sessionID, strconv.FormatUint(userID, 10), ttl).Err()
}

func (s *RedisStore) Find(ctx context.Context, sessionID string) (uint64, error) {
	value, err := s.rdb.Get(ctx, redisKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, err
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidSession
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+sessionID).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

var _ ports.SessionStore = (*RedisStore)(nil)
