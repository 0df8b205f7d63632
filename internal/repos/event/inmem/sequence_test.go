package inmem

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceStartsAtOne(t *testing.T) {
	seq := NewSequence()
	assert.Equal(t, uint64(1), seq.Next())
	assert.Equal(t, uint64(2), seq.Next())
	assert.Equal(t, uint64(3), seq.Next())
}

func TestSequencesAreIndependent(t *testing.T) {
	a, b := NewSequence(), NewSequence()
	a.Next()
	a.Next()
	assert.Equal(t, uint64(1), b.Next())
}

func TestSequenceIsConcurrencySafe(t *testing.T) {
	seq := NewSequence()
	const workers, perWorker = 8, 200

	results := make(chan uint64, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				results <- seq.Next()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := map[uint64]bool{}
	for id := range results {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, uint64(workers*perWorker+1), seq.Next())
}
