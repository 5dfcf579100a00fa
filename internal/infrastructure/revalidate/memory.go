package revalidate

import (
	"context"
	"sync"

	"github.com/jhoicas/Tahsilat-api/internal/application/actions"
)

var _ actions.Invalidator = (*MemoryInvalidator)(nil)

// MemoryInvalidator registra las rutas invalidadas en memoria.
// Se usa sin REDIS_URL (un solo proceso) y en tests.
type MemoryInvalidator struct {
	mu   sync.Mutex
	keys []string
	err  error
}

// NewMemoryInvalidator construye el adaptador vacío.
func NewMemoryInvalidator() *MemoryInvalidator {
	return &MemoryInvalidator{}
}

// Invalidate registra viewKey, o devuelve el error configurado con FailWith.
func (m *MemoryInvalidator) Invalidate(_ context.Context, viewKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.keys = append(m.keys, viewKey)
	return nil
}

// FailWith hace que las siguientes invalidaciones fallen con err (nil restaura).
func (m *MemoryInvalidator) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// Keys copia de las rutas invalidadas en orden.
func (m *MemoryInvalidator) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.keys...)
}
