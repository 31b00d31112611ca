package checkout

import "sync"

// MemoryURLState backs the wizard in headless contexts (CLI, tests) where
// there is no browser location to write through.
type MemoryURLState struct {
	mu      sync.Mutex
	orderID string
}

func (m *MemoryURLState) OrderID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orderID
}

func (m *MemoryURLState) SetOrderID(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orderID = id
}
