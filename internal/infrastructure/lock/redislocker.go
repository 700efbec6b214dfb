// Package lock provides a Redis-backed per-order mutex.
package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"paybridge/internal/application/payment/usecases"
	"paybridge/internal/shared/logger"
)

const (
	// Lock TTL; bounds how long a crashed holder can block an order.
	lockTTL = 30 * time.Second
	// How long Lock waits for a contended lock before giving up.
	acquireTimeout = 10 * time.Second
	// Poll interval while waiting for a contended lock.
	retryInterval = 100 * time.Millisecond
)

// releaseScript deletes the lock only if the caller still owns it.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// RedisOrderLocker serializes callback and admin operations per order across
// service instances. The row lock inside the database transaction is the
// real barrier; this lock just keeps concurrent workers from doing redundant
// gateway fetches for the same order.
type RedisOrderLocker struct {
	client *redis.Client
	prefix string
	logger logger.Interface
}

func NewRedisOrderLocker(client *redis.Client, logger logger.Interface) *RedisOrderLocker {
	return &RedisOrderLocker{
		client: client,
		prefix: "paybridge:order_lock:",
		logger: logger,
	}
}

var _ usecases.OrderLocker = (*RedisOrderLocker)(nil)

// Lock acquires the per-order lock, waiting up to acquireTimeout for a
// contended lock. The returned release function is safe to call once.
func (l *RedisOrderLocker) Lock(ctx context.Context, incrementID string) (func(), error) {
	if incrementID == "" {
		return nil, fmt.Errorf("increment id cannot be empty")
	}

	key := l.prefix + incrementID
	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate lock token: %w", err)
	}

	deadline := time.Now().Add(acquireTimeout)
	for {
		ok, err := l.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire order lock: %w", err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timed out waiting for order lock: %s", incrementID)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	release := func() {
		// Release uses a fresh context; the caller's context may already be
		// canceled by the time deferred release runs.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := l.client.Eval(releaseCtx, releaseScript, []string{key}, token).Err(); err != nil {
			l.logger.Warnw("failed to release order lock",
				"key", key,
				"error", err,
			)
		}
	}

	return release, nil
}

func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
