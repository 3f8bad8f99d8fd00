package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// TieredStore обращается к основному хранилищу и переключается на резервное при его ошибках.
// Резервное хранилище обычно находится в памяти и теряет данные при перезапуске процесса.
type TieredStore struct {
	primary  Store
	fallback Store
	logger   *slog.Logger
}

// NewTieredStore создает двухуровневое хранилище.
func NewTieredStore(primary, fallback Store, logger *slog.Logger) *TieredStore {
	return &TieredStore{primary: primary, fallback: fallback, logger: logger}
}

func (t *TieredStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := t.primary.Get(ctx, key)
	if err == nil || errors.Is(err, ErrCacheMiss) {
		return value, err
	}
	t.degraded(ctx, "get", err)
	return t.fallback.Get(ctx, key)
}

func (t *TieredStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := t.primary.Set(ctx, key, value, ttl); err != nil {
		t.degraded(ctx, "set", err)
		return t.fallback.Set(ctx, key, value, ttl)
	}
	return nil
}

func (t *TieredStore) Delete(ctx context.Context, key string) error {
	err := t.primary.Delete(ctx, key)
	if err != nil {
		t.degraded(ctx, "delete", err)
	}
	return t.fallback.Delete(ctx, key)
}

func (t *TieredStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := t.primary.Incr(ctx, key, window)
	if err != nil {
		t.degraded(ctx, "incr", err)
		return t.fallback.Incr(ctx, key, window)
	}
	return n, nil
}

func (t *TieredStore) degraded(ctx context.Context, op string, err error) {
	t.logger.WarnContext(ctx, "primary cache unavailable, using fallback", "op", op, "error", err)
}
