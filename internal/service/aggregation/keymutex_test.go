package aggregation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := newKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := km.lock("same-key")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	require.Equal(t, 100, counter)
	require.Empty(t, km.entries, "entries must be reclaimed after release")
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := newKeyedMutex()

	unlockA := km.lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.lock("b")
		unlockB()
		close(done)
	}()

	<-done
}
