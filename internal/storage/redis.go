package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

// RedisStore maps each user to one hash keyed "fitos:<user>", with one
// field per feature.
type RedisStore struct {
	client *redis.Client
	logger internal.Logger
}

func NewRedisStore(addr, password string, db int, logger internal.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, logger: logger}, nil
}

func userKey(userID string) string {
	return "fitos:" + userID
}

func (r *RedisStore) Get(ctx context.Context, userID, feature string) (json.RawMessage, bool, error) {
	val, err := r.client.HGet(ctx, userKey(userID), feature).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Errorf("failed to read record: %v", err)
		return nil, false, err
	}
	payload := json.RawMessage(val)
	if !json.Valid(payload) {
		return nil, false, nil
	}
	return payload, true, nil
}

func (r *RedisStore) Put(ctx context.Context, userID, feature string, value json.RawMessage) error {
	if err := r.client.HSet(ctx, userKey(userID), feature, string(value)).Err(); err != nil {
		r.logger.Errorf("failed to write record: %v", err)
		return err
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, userID, feature string) error {
	if err := r.client.HDel(ctx, userKey(userID), feature).Err(); err != nil {
		r.logger.Errorf("failed to delete record: %v", err)
		return err
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

var _ RecordStore = (*RedisStore)(nil)
