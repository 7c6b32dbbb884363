package lock

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/service"
	"stampcard/internal/errors"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_Exclusive(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	release, err := l.Acquire(ctx, "card-1")
	require.NoError(t, err)

	_, err = l.Acquire(ctx, "card-1")
	assert.True(t, errors.Is(err, service.ErrLockHeld))

	other, err := l.Acquire(ctx, "card-2")
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := l.Acquire(ctx, "card-1")
	require.NoError(t, err)
	again()
}

func TestMemoryLocker_OneWinnerUnderContention(t *testing.T) {
	l := NewMemoryLocker()

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
		start   = make(chan struct{})
		hold    = make(chan struct{})
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			release, err := l.Acquire(context.Background(), "card-1")
			if err != nil {
				return
			}
			winners.Add(1)
			<-hold
			release()
		}()
	}

	close(start)
	time.Sleep(50 * time.Millisecond)
	close(hold)
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestMemoryLocker_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryLocker().Acquire(ctx, "card-1")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRedisLocker_UnreachableIsRetryable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLocker(client, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := l.Acquire(context.Background(), "card-1")
	require.Error(t, err)
	assert.True(t, errors.IsRetryable(err))
}

func TestNewLinkLocker_FallsBackToMemory(t *testing.T) {
	l := NewLinkLocker(LockerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, ok := l.(*memoryLocker)
	assert.True(t, ok)
}
