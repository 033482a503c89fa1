package concurrency

import (
	"context"
	"sync"
)

// LockManager hands out one mutex per key. Entries are dropped once no caller holds or
// waits on them, so the map only ever holds keys that are in use.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{} // buffered(1); a token in the channel means locked
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until the key is free or ctx is done. The returned func releases the key
// and must be called exactly once.
func (lm *LockManager) Lock(ctx context.Context, key string) (func(), error) {
	kl := lm.acquireRef(key)

	select {
	case kl.ch <- struct{}{}:
	case <-ctx.Done():
		lm.releaseRef(key, kl)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-kl.ch
			lm.releaseRef(key, kl)
		})
	}, nil
}

// Len returns the number of keys currently held or awaited.
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}

func (lm *LockManager) acquireRef(key string) *keyLock {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	kl, ok := lm.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		lm.locks[key] = kl
	}
	kl.refs++
	return kl
}

func (lm *LockManager) releaseRef(key string, kl *keyLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(lm.locks, key)
	}
}
