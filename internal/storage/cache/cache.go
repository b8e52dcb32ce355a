package cache

import (
	"sync"
)

type progressKey struct {
	userID int64
	wordID int64
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// ProgressLocks serializes read-modify-write cycles on a single
// learning-progress row. Entries are created on demand and dropped once
// the last holder releases them.
type ProgressLocks struct {
	mu    sync.Mutex
	locks map[progressKey]*lockEntry
}

func NewProgressLocks() *ProgressLocks {
	return &ProgressLocks{
		locks: make(map[progressKey]*lockEntry),
	}
}

// Lock blocks until the (user, word) key is exclusively held and returns
// the release func.
func (p *ProgressLocks) Lock(userID, wordID int64) func() {
	key := progressKey{userID: userID, wordID: wordID}

	p.mu.Lock()
	entry, exists := p.locks[key]
	if !exists {
		entry = &lockEntry{}
		p.locks[key] = entry
	}
	entry.refs++
	p.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		p.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(p.locks, key)
		}
		p.mu.Unlock()
	}
}
