package keytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

// The tree is safe for concurrent reads as long as no writer runs.
// This test puts every read path under the race detector at once.
func TestConcurrentReaders(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := New()
	assert.NoError(t, tr.Init(mixedRecords()))

	var eg errgroup.Group
	for i := 0; i < 8; i++ {
		eg.Go(func() error {
			for j := 0; j < 100; j++ {
				if _, _, err := tr.Find(3); err != nil {
					return err
				}
				if _, err := tr.FindAll(map[string]any{"type": "fruit"}); err != nil {
					return err
				}
				if got := len(tr.Items()); got != 7 {
					return assert.AnError
				}
				if _, err := tr.Minimum(); err != nil {
					return err
				}
				if !tr.Balanced() {
					return assert.AnError
				}

				it := tr.InOrderIterator()
				for it.Next() {
					_ = it.Item()
				}
			}
			return nil
		})
	}

	assert.NoError(t, eg.Wait())
}

func TestConcurrentCoroutineReaders(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := New()
	assert.NoError(t, tr.Init([]any{4, 2, 6, 1, 3, 5, 7}))

	var eg errgroup.Group
	for i := 0; i < 4; i++ {
		eg.Go(func() error {
			n := 0
			for range tr.InOrderCoroutine().Items() {
				n++
			}
			if n != 7 {
				return assert.AnError
			}
			return nil
		})
	}

	assert.NoError(t, eg.Wait())
}
