package storage

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const maxWatchRetries = 5

// RedisListStore keeps each list in a native Redis list. Writes push and
// refresh the key expiry inside one MULTI, read-modify-write goes through WATCH.
type RedisListStore struct {
	client redis.UniversalClient
	log    *slog.Logger
}

func NewRedisListStore(client redis.UniversalClient, log *slog.Logger) *RedisListStore {
	return &RedisListStore{client: client, log: log}
}

func toArgs(values [][]byte) []interface{} {
	args := make([]interface{}, 0, len(values))
	for _, value := range values {
		args = append(args, value)
	}
	return args
}

func toBytes(values []string) [][]byte {
	out := make([][]byte, 0, len(values))
	for _, value := range values {
		out = append(out, []byte(value))
	}
	return out
}

func (s *RedisListStore) Append(ctx context.Context, key string, values [][]byte, ttl time.Duration) error {
	if len(values) == 0 {
		return nil
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, toArgs(values)...)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

func (s *RedisListStore) Range(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	values, err := s.client.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, err
	}
	return toBytes(values), nil
}

func (s *RedisListStore) Len(ctx context.Context, key string) (int64, error) {
	return s.client.LLen(ctx, key).Result()
}

func (s *RedisListStore) TrimFront(ctx context.Context, key string, head [][]byte, ttl time.Duration) (bool, error) {
	if len(head) == 0 {
		return true, nil
	}
	trimmed := false
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.LRange(ctx, key, 0, int64(len(head)-1)).Result()
		if err != nil {
			return err
		}
		if len(current) != len(head) {
			return nil
		}
		for i, value := range current {
			if !bytes.Equal([]byte(value), head[i]) {
				return nil
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.LTrim(ctx, key, int64(len(head)), -1)
			pipe.Expire(ctx, key, ttl)
			return nil
		})
		if err == nil {
			trimmed = true
		}
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	return trimmed, err
}

// Rewrite retries when another client touched the key between read and write.
func (s *RedisListStore) Rewrite(ctx context.Context, key string,
	fn func(values [][]byte) ([][]byte, error), ttl time.Duration) error {
	txf := func(tx *redis.Tx) error {
		current, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return err
		}
		if len(current) == 0 {
			return nil
		}
		next, err := fn(toBytes(current))
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			if len(next) > 0 {
				pipe.RPush(ctx, key, toArgs(next)...)
				pipe.Expire(ctx, key, ttl)
			}
			return nil
		})
		return err
	}

	var err error
	for attempt := 0; attempt < maxWatchRetries; attempt++ {
		err = s.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
		s.log.Debug("Watched key changed, retrying", "key", key, "attempt", attempt+1)
	}
	return err
}

func (s *RedisListStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisListStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
