// Package cache содержит хранилища ключ-значение для кэша ответов и счетчиков ограничения запросов.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss возвращается, когда ключ отсутствует или истек.
var ErrCacheMiss = errors.New("cache miss")

// Store - хранилище ключ-значение с ограниченным временем жизни записей.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Incr увеличивает счетчик key. Окно window отсчитывается от первого увеличения.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
