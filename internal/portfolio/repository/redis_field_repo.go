package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const fieldKeyPrefix = "portfolio:fields:" // hash per project: portfolio:fields:{project_id} -> field_key -> json

// RedisFieldRepository reads custom field values kept in one Redis hash per
// project.
type RedisFieldRepository struct {
	client *redis.Client
}

func NewRedisFieldRepository(client *redis.Client) *RedisFieldRepository {
	return &RedisFieldRepository{client: client}
}

func (r *RedisFieldRepository) ReadField(ctx context.Context, recordID int64, key string) (json.RawMessage, error) {
	val, err := r.client.HGet(ctx, r.hashKey(recordID), key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read field %s: %w", key, err)
	}
	return rawValue(val), nil
}

func (r *RedisFieldRepository) hashKey(recordID int64) string {
	return fmt.Sprintf("%s%d", fieldKeyPrefix, recordID)
}
