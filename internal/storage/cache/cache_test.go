package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressLocks_SameKeySerializes(t *testing.T) {
	t.Parallel()

	locks := NewProgressLocks()

	const goroutines = 50

	var (
		wg      sync.WaitGroup
		counter int
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := locks.Lock(1, 42)
			defer unlock()

			counter++
		}()
	}

	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestProgressLocks_DifferentKeysIndependent(t *testing.T) {
	t.Parallel()

	locks := NewProgressLocks()

	unlockA := locks.Lock(1, 1)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock(1, 2)
		unlockB()
		close(done)
	}()

	<-done
}

func TestProgressLocks_EntryDroppedAfterRelease(t *testing.T) {
	t.Parallel()

	locks := NewProgressLocks()

	unlock := locks.Lock(7, 7)
	unlock()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	require.Empty(t, locks.locks)
}
