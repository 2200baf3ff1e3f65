package locks

import (
	"context"
	"errors"
	"sync"
	"time"

	"dentallab/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "dentallab:lock:"

// releaseScript deletes the lock only while it still carries the caller's token, so an expired
// lock re-acquired by someone else is never released by the previous owner.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLockerConfig struct {
	// Wait bounds how long Lock polls for a held key.
	Wait time.Duration
	// TTL expires a lock whose owner crashed. It must exceed the longest critical section.
	TTL time.Duration
	// Retry is the poll interval while waiting.
	Retry time.Duration
}

// RedisLocker takes locks with SET NX PX and releases them with a compare-and-delete script.
type RedisLocker struct {
	client redis.UniversalClient
	cfg    RedisLockerConfig
	logger *zap.Logger
}

func NewRedisLocker(client redis.UniversalClient, cfg RedisLockerConfig, logger *zap.Logger) *RedisLocker {
	if cfg.Retry <= 0 {
		cfg.Retry = 25 * time.Millisecond
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	return &RedisLocker{
		client: client,
		cfg:    cfg,
		logger: logger.With(zap.String("component", "redis_locker")),
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := redisKeyPrefix + key
	token := uuid.NewString()
	deadline := time.Now().Add(l.cfg.Wait)

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.cfg.TTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return l.unlockFunc(redisKey, token), nil
		}

		if !time.Now().Before(deadline) {
			return nil, errs.NewContentionError(key, errors.New("lock wait timeout exceeded"))
		}

		timer := time.NewTimer(l.cfg.Retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *RedisLocker) unlockFunc(redisKey, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() { l.release(redisKey, token) })
	}
}

func (l *RedisLocker) release(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil {
		l.logger.Warn("failed to release lock", zap.String("key", redisKey), zap.Error(err))
	}
}
