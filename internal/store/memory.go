package store

// Memory is an in-memory Store. It is not durable and exists for tests and
// for wiring components that only need the Store contract.
type Memory struct {
	values map[string][]byte
}

// NewMemory creates an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get retrieves the value stored under key.
func (m *Memory) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrKeyEmpty
	}

	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return value, nil
}

// Set creates or replaces the value under key.
func (m *Memory) Set(key string, value []byte) error {
	if key == "" {
		return ErrKeyEmpty
	}

	m.values[key] = value

	return nil
}

// Remove deletes the key from the store.
func (m *Memory) Remove(key string) error {
	if key == "" {
		return ErrKeyEmpty
	}

	if _, ok := m.values[key]; !ok {
		return ErrKeyNotFound
	}

	delete(m.values, key)

	return nil
}
