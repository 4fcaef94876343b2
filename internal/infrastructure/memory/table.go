// Package memory implements the repository ports on in-process maps.
// It backs the test suites and STORAGE_DRIVER=memory for local runs; data is
// lost when the process exits.
package memory

import (
	"sync"

	"github.com/karibu-groceries/kgl-api/internal/domain"
)

// table is a mutex-guarded keyed collection that hands out copies, so callers
// never alias stored records. List returns records in insertion order.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) replace(id string, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) remove(id string) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return row, true
}
