package services

import (
	"sync"

	"github.com/google/uuid"
)

// keyedLock serializes writers per aggregate id. Entries are dropped once nobody holds them.
type keyedLock struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedLock() *keyedLock {
	return &keyedLock{locks: make(map[uuid.UUID]*refMutex)}
}

// Lock blocks until id is free and returns the matching unlock func.
func (k *keyedLock) Lock(id uuid.UUID) func() {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &refMutex{}
		k.locks[id] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}
