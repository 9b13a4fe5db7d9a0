package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// maxTrackedClients ограничивает количество отслеживаемых клиентов
	maxTrackedClients = 10000

	cleanupInterval = time.Minute
)

// Limiter ограничивает частоту запросов для каждого клиента отдельно
type Limiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	cleanup  *time.Ticker
	stopOnce sync.Once
	stopChan chan struct{}
}

// NewLimiter создает лимитер с заданной частотой и размером всплеска
func NewLimiter(requestsPerSecond int, burst int) *Limiter {
	l := &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		cleanup:  time.NewTicker(cleanupInterval),
		stopChan: make(chan struct{}),
	}

	go l.cleanupRoutine()

	return l
}

// Allow сообщает, можно ли обработать запрос клиента
func (l *Limiter) Allow(client string) bool {
	l.mu.Lock()
	limiter, exists := l.limiters[client]
	if !exists {
		if len(l.limiters) >= maxTrackedClients {
			l.mu.Unlock()
			return false
		}
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[client] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

func (l *Limiter) cleanupRoutine() {
	for {
		select {
		case <-l.cleanup.C:
			l.cleanupIdle()
		case <-l.stopChan:
			return
		}
	}
}

// cleanupIdle удаляет лимитеры клиентов, накопивших полный запас токенов
func (l *Limiter) cleanupIdle() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for client, limiter := range l.limiters {
		if limiter.Tokens() >= float64(l.burst) {
			delete(l.limiters, client)
		}
	}
}

// Stop останавливает фоновую очистку. Повторный вызов безопасен.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		l.cleanup.Stop()
		close(l.stopChan)
	})
}

// Tracked возвращает количество отслеживаемых клиентов
func (l *Limiter) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
