package ledger

import (
	"context"
	"sync"
)

// accountLocks serializes work per source account. The network orders transactions by a per-account
// sequence number, so two in-flight submissions from one account would collide.
type accountLocks struct {
	mu   sync.Mutex
	held map[string]*accountLock
}

type accountLock struct {
	sem  chan struct{}
	refs int
}

func newAccountLocks() *accountLocks {
	return &accountLocks{held: make(map[string]*accountLock)}
}

func (l *accountLocks) acquire(key string) *accountLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk, ok := l.held[key]
	if !ok {
		lk = &accountLock{sem: make(chan struct{}, 1)}
		l.held[key] = lk
	}
	lk.refs++
	return lk
}

func (l *accountLocks) release(key string, lk *accountLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk.refs--
	if lk.refs == 0 {
		delete(l.held, key)
	}
}

// Lock blocks until key is free or ctx is done. The returned func releases the key.
func (l *accountLocks) Lock(ctx context.Context, key string) (func(), error) {
	lk := l.acquire(key)
	select {
	case lk.sem <- struct{}{}:
		return func() {
			<-lk.sem
			l.release(key, lk)
		}, nil
	case <-ctx.Done():
		l.release(key, lk)
		return nil, ctx.Err()
	}
}
