package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_Burst(t *testing.T) {
	limiter := NewLimiter(10, 20)
	defer limiter.Stop()

	client := "192.168.1.1"

	for i := 0; i < 20; i++ {
		assert.True(t, limiter.Allow(client), "request %d should be allowed within burst", i)
	}

	assert.False(t, limiter.Allow(client), "request after burst should be denied")
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(10, 5)
	defer limiter.Stop()

	for _, client := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow(client))
		}
		assert.False(t, limiter.Allow(client))
	}

	assert.Equal(t, 3, limiter.Tracked())
}

func TestAllow_Refill(t *testing.T) {
	limiter := NewLimiter(100, 1)
	defer limiter.Stop()

	require.True(t, limiter.Allow("client"))
	require.False(t, limiter.Allow("client"))

	time.Sleep(30 * time.Millisecond)

	assert.True(t, limiter.Allow("client"))
}

func TestAllow_CapacityLimit(t *testing.T) {
	limiter := NewLimiter(1, 1)
	defer limiter.Stop()

	for i := 0; i < maxTrackedClients; i++ {
		limiter.Allow(fmt.Sprintf("client-%d", i))
	}

	assert.False(t, limiter.Allow("one-more-client"))
	assert.Equal(t, maxTrackedClients, limiter.Tracked())
}

func TestCleanupIdle(t *testing.T) {
	limiter := NewLimiter(1000, 1)
	defer limiter.Stop()

	limiter.Allow("client")
	require.Equal(t, 1, limiter.Tracked())

	time.Sleep(20 * time.Millisecond)
	limiter.cleanupIdle()

	assert.Equal(t, 0, limiter.Tracked())
}

func TestStop_Idempotent(t *testing.T) {
	limiter := NewLimiter(1, 1)

	assert.NotPanics(t, func() {
		limiter.Stop()
		limiter.Stop()
	})
}

func TestAllow_Concurrent(t *testing.T) {
	limiter := NewLimiter(1, 50)
	defer limiter.Stop()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, allowed, 50)
	assert.LessOrEqual(t, allowed, 52)
}
