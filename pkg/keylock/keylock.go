package keylock

import "sync"

// Manager provides mutual exclusion scoped to an arbitrary string key,
// so bookings for unrelated seats never serialize against each other.
// The lock only spans a single process; cross-process correctness rests
// on the store's conditional write, not on this manager.
type Manager interface {
	Lock(key string)
	Unlock(key string)
}

type keyedManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewManager() Manager {
	return &keyedManager{
		locks: make(map[string]*keyLock),
	}
}

func (m *keyedManager) Lock(key string) {
	m.mu.Lock()
	kl, ok := m.locks[key]
	if !ok {
		kl = &keyLock{}
		m.locks[key] = kl
	}
	kl.refs++
	m.mu.Unlock()

	kl.mu.Lock()
}

// Unlock releases the lock for key. The entry is dropped from the map
// once no goroutine holds or waits on it.
func (m *keyedManager) Unlock(key string) {
	m.mu.Lock()
	kl, ok := m.locks[key]
	if !ok {
		m.mu.Unlock()
		panic("keylock: unlock of unheld key " + key)
	}
	kl.refs--
	if kl.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()

	kl.mu.Unlock()
}
