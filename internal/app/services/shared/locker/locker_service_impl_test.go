package locker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	values  map[string]string
	deleted []string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeRedisRepository) TrySetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	if _, exists := f.values[key]; exists {
		return false, nil
	}
	f.values[key] = value.(string)
	return true, nil
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire then release", func(t *testing.T) {
		repo := newFakeRedisRepository()
		svc := &lockService{redisRepo: repo, Log: zap.NewNop()}

		acquired, lockValue, err := svc.TryLock(ctx, "lock:a", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)
		require.NotEmpty(t, lockValue)

		require.NoError(t, svc.Unlock(ctx, "lock:a", lockValue))
		assert.Equal(t, []string{"lock:a"}, repo.deleted)
	})

	t.Run("second acquisition is refused while held", func(t *testing.T) {
		repo := newFakeRedisRepository()
		svc := &lockService{redisRepo: repo, Log: zap.NewNop()}

		acquired, _, err := svc.TryLock(ctx, "lock:a", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		acquired, _, err = svc.TryLock(ctx, "lock:a", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("unlock with a stale value does not release", func(t *testing.T) {
		repo := newFakeRedisRepository()
		svc := &lockService{redisRepo: repo, Log: zap.NewNop()}

		acquired, _, err := svc.TryLock(ctx, "lock:a", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		require.NoError(t, svc.Unlock(ctx, "lock:a", "someone-elses-value"))
		assert.Empty(t, repo.deleted)

		acquired, _, err = svc.TryLock(ctx, "lock:a", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired, "the original lock must still be held")
	})
}
