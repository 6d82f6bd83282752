package keylock

import (
	"sync"
	"testing"
	"time"
)

func TestLock_MutualExclusionPerKey(t *testing.T) {
	m := NewManager()

	const goroutines = 32
	const increments = 100

	counter := 0
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				m.Lock("FL-100/1A")
				counter++
				m.Unlock("FL-100/1A")
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*increments {
		t.Errorf("expected %d, got %d", goroutines*increments, counter)
	}
}

func TestLock_IndependentKeys(t *testing.T) {
	m := NewManager()

	m.Lock("FL-100/1A")
	defer m.Unlock("FL-100/1A")

	done := make(chan struct{})
	go func() {
		m.Lock("FL-100/2A")
		m.Unlock("FL-100/2A")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a different key must not block")
	}
}

func TestUnlock_ReleasesEntry(t *testing.T) {
	m := NewManager()

	m.Lock("FL-100/1A")
	m.Unlock("FL-100/1A")

	km := m.(*keyedManager)
	km.mu.Lock()
	remaining := len(km.locks)
	km.mu.Unlock()

	if remaining != 0 {
		t.Errorf("expected no retained entries, got %d", remaining)
	}
}

func TestUnlock_UnheldKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unlocking an unheld key")
		}
	}()

	NewManager().Unlock("FL-100/1A")
}
