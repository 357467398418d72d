package services

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeyedLock_SerializesSameKey(t *testing.T) {
	locks := newKeyedLock()
	id := uuid.New()

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(id)
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Empty(t, locks.locks, "released entries are dropped")
}

func TestKeyedLock_DifferentKeysDoNotBlock(t *testing.T) {
	locks := newKeyedLock()
	unlockA := locks.Lock(uuid.New())
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock(uuid.New())
		unlock()
		close(done)
	}()
	<-done
}
