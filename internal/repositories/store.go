package repositories

import "sync"

// Storage keys for the three persisted records. They mirror the keys the
// web client used, so an exported blob dump stays recognizable.
const (
	KeyUserProfile  = "doonconnect_user"
	KeyTickets      = "doonconnect_tickets"
	KeyAdminSession = "doonconnect_admin_auth"
)

// BlobStore is the opaque key-value persistence boundary. Core logic never
// touches a storage medium directly; everything goes through this interface
// so tests can run on the in-memory implementation.
type BlobStore interface {
	// Get returns the raw blob and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// MemoryStore is a process-local BlobStore used by tests and by
// STORAGE_DRIVER=memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *MemoryStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
