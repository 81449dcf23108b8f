package store

// MemKV is an in-memory adapter for tests. LoadErr and SaveErr let tests
// exercise the fail-open paths without touching a filesystem.
type MemKV struct {
	Data    map[string][]byte
	LoadErr error
	SaveErr error
}

// NewMemKV returns an empty in-memory adapter.
func NewMemKV() *MemKV {
	return &MemKV{Data: make(map[string][]byte)}
}

// Load returns the stored blob, the injected error, or ErrNotFound.
func (m *MemKV) Load(key string) ([]byte, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	value, ok := m.Data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

// Save stores the blob or returns the injected error.
func (m *MemKV) Save(key string, value []byte) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Data[key] = value
	return nil
}
