package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestRedisFieldRepository_ReadField(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewRedisFieldRepository(client)
	ctx := context.Background()

	mr.HSet("portfolio:fields:3", "image", `{"url":"https://cdn.example/3.jpg"}`)
	mr.HSet("portfolio:fields:3", "gallery", `[{"id":1},{"id":2}]`)
	mr.HSet("portfolio:fields:3", "caption", "plain text")

	v, err := repo.ReadField(ctx, 3, "image")
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://cdn.example/3.jpg"}`, string(v))

	v, err = repo.ReadField(ctx, 3, "gallery")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1},{"id":2}]`, string(v))

	v, err = repo.ReadField(ctx, 3, "caption")
	require.NoError(t, err)
	assert.Equal(t, `"plain text"`, string(v))

	t.Run("missing field and missing hash are nil", func(t *testing.T) {
		v, err := repo.ReadField(ctx, 3, "video")
		require.NoError(t, err)
		assert.Nil(t, v)

		v, err = repo.ReadField(ctx, 99, "image")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("unreachable server is an error", func(t *testing.T) {
		mr.Close()
		_, err := repo.ReadField(ctx, 3, "image")
		require.Error(t, err)
	})
}
