// Package ratelimit ограничивает количество запросов клиента в фиксированном окне.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/akozadaev/rawgle/internal/cache"
)

// Limiter считает запросы клиентов в хранилище счетчиков.
type Limiter struct {
	counters cache.Store
	limit    int
	window   time.Duration
	now      func() time.Time
}

// New создает ограничитель на limit запросов за window.
func New(counters cache.Store, limit int, window time.Duration) *Limiter {
	return &Limiter{counters: counters, limit: limit, window: window, now: time.Now}
}

// Allow учитывает запрос клиента и сообщает, укладывается ли он в лимит.
func (l *Limiter) Allow(ctx context.Context, client string) (allowed bool, remaining int, resetTime time.Time, err error) {
	now := l.now()
	windowStart := now.Truncate(l.window)
	resetTime = windowStart.Add(l.window)

	key := fmt.Sprintf("ratelimit:%s:%d", client, windowStart.Unix())
	n, err := l.counters.Incr(ctx, key, resetTime.Sub(now))
	if err != nil {
		return false, 0, resetTime, fmt.Errorf("count request: %w", err)
	}

	if n > int64(l.limit) {
		return false, 0, resetTime, nil
	}
	return true, l.limit - int(n), resetTime, nil
}
