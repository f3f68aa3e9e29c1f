package concurrency

import (
	"sync"
)

// LockManager serializes mutating operations per player. Every gold, xp,
// inventory or plot mutation takes the player's lock before opening its
// database transaction, so two concurrent requests for the same player never
// interleave.
type LockManager struct {
	locks sync.Map // player ID -> *sync.Mutex
}

// NewLockManager creates a new lock manager.
func NewLockManager() *LockManager {
	return &LockManager{}
}

// LockPlayer acquires the lock for the given player, creating it on first use.
// The returned function releases the lock.
func (lm *LockManager) LockPlayer(playerID string) func() {
	v, _ := lm.locks.LoadOrStore(playerID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
