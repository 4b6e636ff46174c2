// Package persist stores planner snapshots in a durable string-keyed
// slot. Two backends are provided: a diskv directory (default) and a
// SQLite database. Reads are tolerant: anything missing or unreadable
// degrades to built-in defaults, never to an error the caller must
// handle.
package persist

import "errors"

// DefaultKey is the slot key for the planner snapshot. The value is
// carried over from the storage schema this store replaces.
const DefaultKey = "teamflow_planner_state_v4"

// ErrClosed is returned by slot operations after Close.
var ErrClosed = errors.New("persist: slot closed")

// Slot is a durable string-keyed byte store. Load reports ok=false
// when the key has never been written.
type Slot interface {
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
	Close() error
}

// MemorySlot is an in-process Slot used in tests and as a fallback
// when no durable backend is configured.
type MemorySlot struct {
	values map[string][]byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string][]byte)}
}

func (m *MemorySlot) Load(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemorySlot) Save(key string, value []byte) error {
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemorySlot) Close() error { return nil }
