package core

import (
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// TripLocker serializes sharing-settings writes per trip within this process.
// The database row lock still guards against other instances. Entries are
// never evicted, one mutex per trip ever toggled stays for the process
// lifetime.
type TripLocker struct {
	locks cmap.ConcurrentMap[string, *sync.Mutex]
}

func NewTripLocker() *TripLocker {
	return &TripLocker{
		locks: cmap.New[*sync.Mutex](),
	}
}

func (s *TripLocker) Lock(tripID string) {
	mu, exist := s.locks.Get(tripID)
	if !exist {
		s.locks.SetIfAbsent(tripID, &sync.Mutex{})
		mu, _ = s.locks.Get(tripID)
	}
	mu.Lock()
}

func (s *TripLocker) Unlock(tripID string) {
	if mu, exist := s.locks.Get(tripID); exist {
		mu.Unlock()
	}
}
