package assignment

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuard_SerializesSameResource(t *testing.T) {
	guard := NewGuard()
	key := Key{Kind: KindDock, ID: 1}

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := guard.Acquire(key)
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestGuard_ReleaseAllowsReacquire(t *testing.T) {
	guard := NewGuard()
	key := Key{Kind: KindHauler, ID: 3}

	release := guard.Acquire(key)
	release()

	done := make(chan struct{})
	go func() {
		release := guard.Acquire(key)
		release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reacquire after release blocked")
	}
}

func TestGuard_DuplicateKeysCollapse(t *testing.T) {
	guard := NewGuard()
	key := Key{Kind: KindDock, ID: 1}

	// Acquiring the same key twice in one call must not self-deadlock.
	release := guard.Acquire(key, key)
	release()
}

func TestGuard_OpposingMovesDoNotDeadlock(t *testing.T) {
	guard := NewGuard()
	a := Key{Kind: KindDock, ID: 1}
	b := Key{Kind: KindDock, ID: 2}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release := guard.Acquire(a, b)
			release()
		}()
		go func() {
			defer wg.Done()
			release := guard.Acquire(b, a)
			release()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("opposing multi-key acquisitions deadlocked")
	}
}

func TestGuard_IndependentResourcesDoNotBlock(t *testing.T) {
	guard := NewGuard()

	releaseA := guard.Acquire(Key{Kind: KindDock, ID: 1})
	defer releaseA()

	done := make(chan struct{})
	go func() {
		release := guard.Acquire(Key{Kind: KindDock, ID: 2})
		release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("independent resource acquisition blocked")
	}
}
