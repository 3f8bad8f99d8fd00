package cache

import (
	"context"
	"strconv"
	"sync"
	"time"
)

const sweepEvery = 256

type entry struct {
	value   []byte
	expires time.Time
}

// MemoryStore хранит записи в памяти процесса. Данные теряются при перезапуске.
type MemoryStore struct {
	mu     sync.Mutex
	items  map[string]entry
	writes int
	now    func() time.Time
}

// NewMemoryStore создает пустое хранилище в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]entry), now: time.Now}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok || !m.now().Before(e.expires) {
		delete(m.items, key)
		return nil, ErrCacheMiss
	}
	return append([]byte(nil), e.value...), nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = entry{value: append([]byte(nil), value...), expires: m.now().Add(ttl)}
	m.sweepLocked()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

func (m *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	e, ok := m.items[key]
	var n int64
	if ok && now.Before(e.expires) {
		n, _ = strconv.ParseInt(string(e.value), 10, 64)
	} else {
		e = entry{expires: now.Add(window)}
	}
	n++
	e.value = []byte(strconv.FormatInt(n, 10))
	m.items[key] = e
	m.sweepLocked()
	return n, nil
}

// Len возвращает количество хранимых записей, включая еще не удаленные истекшие.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// sweepLocked периодически удаляет истекшие записи.
func (m *MemoryStore) sweepLocked() {
	m.writes++
	if m.writes%sweepEvery != 0 {
		return
	}
	now := m.now()
	for k, e := range m.items {
		if !now.Before(e.expires) {
			delete(m.items, k)
		}
	}
}
