// Package snapshot models durable local storage as a get/set-by-key
// capability so the application state can be tested against an in-memory
// fake.
package snapshot

import "context"

// Store is the key-value surface the app persists its state through.
// Set replaces the whole value under key; there is no partial write.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// Memory is an in-process Store for tests. It is not safe for concurrent
// use; the app itself is single-threaded around the update loop.
type Memory struct {
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: map[string][]byte{}}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}
