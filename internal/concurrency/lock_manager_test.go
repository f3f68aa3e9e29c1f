package concurrency

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SerializesSamePlayer(t *testing.T) {
	lm := NewLockManager()

	const goroutines = 50
	counter := 0
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			unlock := lm.LockPlayer("player-1")
			defer unlock()
			counter++
		}()
	}

	wg.Wait()
	assert.Equal(t, goroutines, counter)
}

func TestLockManager_DifferentPlayersIndependent(t *testing.T) {
	lm := NewLockManager()

	unlockA := lm.LockPlayer("player-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := lm.LockPlayer("player-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock for a different player should not block")
	}
}
