// Package lock provides the keyed lease that serializes a card's first link.
package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/service"
	"stampcard/internal/errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const keyPrefix = "stampcard:lease:"

// releaseScript deletes the lease only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LockerParams holds dependencies for the link locker, injected by Fx
type LockerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLinkLocker returns a Redis-backed locker when Redis is configured and
// an in-process one otherwise.
func NewLinkLocker(params LockerParams) service.LinkLocker {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-process link lease")

		return NewMemoryLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Logger.Info("Using Redis link lease",
		slog.String("addr", cfg.Addr),
		slog.Duration("ttl", cfg.LeaseTTL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLocker(client, cfg.LeaseTTL, params.Logger)
}

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisLocker creates a lease on SET NX with a TTL, so a crashed holder
// frees the key after ttl.
func NewRedisLocker(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.LinkLocker {
	return &redisLocker{client: client, ttl: ttl, logger: logger}
}

func (l *redisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	redisKey := keyPrefix + key

	ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
	if err != nil {
		return nil, errors.Retryable(errors.Wrapf(err, "acquire lease %s", key))
	}
	if !ok {
		return nil, service.ErrLockHeld
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			// the caller's ctx may already be done
			releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
				l.logger.Warn("Failed to release lease",
					slog.String("key", key),
					slog.Any("error", err),
				)
			}
		})
	}, nil
}

type memoryLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryLocker creates a lease that only serializes within this process.
func NewMemoryLocker() service.LinkLocker {
	return &memoryLocker{held: make(map[string]struct{})}
}

func (l *memoryLocker) Acquire(ctx context.Context, key string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return nil, service.ErrLockHeld
	}
	l.held[key] = struct{}{}

	var once sync.Once

	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, nil
}
