package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_SerializesHolders(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Lock(ctx, "sale")
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			mu.Lock()
			inside++
			maxSeen = max(maxSeen, inside)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestLocalLocker_HonoursContext(t *testing.T) {
	l := NewLocalLocker()

	release, err := l.Lock(context.Background(), "sale")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "sale")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Other keys are independent.
	other, err := l.Lock(context.Background(), "report")
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := l.Lock(context.Background(), "sale")
	require.NoError(t, err)
	again()
}

func TestRedisLocker_GivesUpWhenRedisIsUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	l := NewRedisLocker(client, logger.NewNop())
	l.backoff = time.Millisecond

	_, err := l.Lock(context.Background(), "lock:sale")
	assert.ErrorIs(t, err, ErrLockBusy)
}
