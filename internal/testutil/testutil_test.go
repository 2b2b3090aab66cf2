package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedIDGenerator(t *testing.T) {
	g := NewFixedIDGenerator("eval-1")
	assert.Equal(t, "eval-1", g.Generate())
	assert.Equal(t, "eval-1", g.Generate())

	assert.Equal(t, DefaultEvalID, NewFixedIDGenerator("").Generate())
}

func TestSequence_Next(t *testing.T) {
	var s Sequence
	assert.Equal(t, 0, s.Current())
	assert.Equal(t, 1, s.Next())
	assert.Equal(t, 2, s.Next())
	assert.Equal(t, 2, s.Current())

	s.Reset()
	assert.Equal(t, 0, s.Current())
	assert.Equal(t, 1, s.Next())
}

func TestSequence_Concurrent(t *testing.T) {
	var s Sequence
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Next()
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, s.Current())
}
