// Package concurrency provides in-process keyed locks.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Locks are never evicted, so keys
// should come from a bounded set such as match or entry identifiers.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the mutex for key and returns its release function
//
//	defer locks.Lock("match:" + id.String())()
func (lm *LockManager) Lock(key string) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}
