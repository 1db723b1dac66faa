package keytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemove(t *testing.T) {
	tests := []struct {
		name   string
		adds   []any
		remove any
		post   func(t *testing.T, tr *Tree)
	}{
		{
			name:   "leaf",
			adds:   []any{2, 1, 3},
			remove: 1,
			post: func(t *testing.T, tr *Tree) {
				assert.Equal(t, float64(2), tr.root.Key)
				assert.Nil(t, tr.root.Left)
				assert.Equal(t, float64(3), tr.root.Right.Key)
			},
		},
		{
			name:   "root of single node",
			adds:   []any{1},
			remove: 1,
			post: func(t *testing.T, tr *Tree) {
				assert.Nil(t, tr.root)
				assert.True(t, tr.IsEmpty())
			},
		},
		{
			name:   "node with only left child",
			adds:   []any{3, 2, 1},
			remove: 2,
			post: func(t *testing.T, tr *Tree) {
				assert.Equal(t, float64(3), tr.root.Key)
				assert.Equal(t, float64(1), tr.root.Left.Key)
				assert.Equal(t, tr.root, tr.root.Left.Parent)
				assert.Nil(t, tr.root.Left.Left)
			},
		},
		{
			name:   "node with only right child",
			adds:   []any{1, 2, 3},
			remove: 2,
			post: func(t *testing.T, tr *Tree) {
				assert.Equal(t, float64(1), tr.root.Key)
				assert.Equal(t, float64(3), tr.root.Right.Key)
				assert.Equal(t, tr.root, tr.root.Right.Parent)
			},
		},
		{
			name: "two children splices successor",
			//	  4
			//	 / \
			//	2   6
			//	   / \
			//	  5   7
			adds:   []any{4, 2, 6, 5, 7},
			remove: 4,
			post: func(t *testing.T, tr *Tree) {
				// 5 is the in-order successor; its key and value move up
				assert.Equal(t, float64(5), tr.root.Key)
				assert.Equal(t, 5, tr.root.Value)
				assert.Equal(t, float64(2), tr.root.Left.Key)
				assert.Equal(t, float64(6), tr.root.Right.Key)
				assert.Nil(t, tr.root.Right.Left)
				assert.Equal(t, float64(7), tr.root.Right.Right.Key)
				assert.Equal(t, tr.root, tr.root.Right.Parent)
				assert.Equal(t, tr.root.Right, tr.root.Right.Right.Parent)
			},
		},
		{
			name: "two children where successor has a right child",
			//	  4                 5
			//	 / \               / \
			//	2   7      ->     2   7
			//	   / \               / \
			//	  5   8             6   8
			//	   \
			//	    6
			adds:   []any{4, 2, 7, 5, 8, 6},
			remove: 4,
			post: func(t *testing.T, tr *Tree) {
				assert.Equal(t, float64(5), tr.root.Key)
				assert.Equal(t, float64(7), tr.root.Right.Key)
				assert.Equal(t, float64(6), tr.root.Right.Left.Key)
				assert.Equal(t, tr.root.Right, tr.root.Right.Left.Parent)
				assert.Equal(t, float64(8), tr.root.Right.Right.Key)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			for _, v := range tt.adds {
				assert.NoError(t, tr.Add(v))
			}
			before := tr.Size()

			assert.NoError(t, tr.Remove(tt.remove))

			assert.Equal(t, before-1, tr.Size())
			assert.True(t, tr.Balanced())
			assertOrdered(t, tr)
			tt.post(t, tr)
		})
	}
}

func TestRemoveErrors(t *testing.T) {
	t.Run("nil key", func(t *testing.T) {
		tr := New()
		assert.ErrorIs(t, tr.Remove(nil), ErrInvalid)
	})

	t.Run("empty tree", func(t *testing.T) {
		tr := New()
		assert.ErrorIs(t, tr.Remove("anything"), ErrNotFound)
	})

	t.Run("missing key leaves tree unchanged", func(t *testing.T) {
		tr := New()
		assert.NoError(t, tr.Init([]any{"apple", "banana", "cherry", "date"}))
		before := tr.Size()

		err := tr.Remove("missing")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, before, tr.Size())
		assert.Equal(t, []any{"apple", "banana", "cherry", "date"}, tr.Items())
	})

	t.Run("key of another kind", func(t *testing.T) {
		tr := New()
		assert.NoError(t, tr.Add("apple"))
		assert.ErrorIs(t, tr.Remove(42), ErrNotFound)
		assert.Equal(t, 1, tr.Size())
	})
}

func TestRemoveThenFindYieldsNothing(t *testing.T) {
	tr := New()
	assert.NoError(t, tr.Init([]any{"apple", "banana", "cherry", "date"}))

	assert.NoError(t, tr.Remove("banana"))

	assert.Equal(t, []any{"apple", "cherry", "date"}, tr.Items())
	assert.Equal(t, 3, tr.Size())

	matches, err := tr.FindAll("banana")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRemoveAllDescending(t *testing.T) {
	tr := New()
	for i := 1; i <= 20; i++ {
		assert.NoError(t, tr.Add(i))
	}

	for i := 20; i >= 1; i-- {
		assert.NoError(t, tr.Remove(i))
		assertOrdered(t, tr)
	}

	assert.True(t, tr.IsEmpty())

	// an emptied tree accepts a fresh key kind
	assert.NoError(t, tr.Add("back to strings"))
}

func TestRemoveDuplicateKeyRemovesOne(t *testing.T) {
	tr := New()
	assert.NoError(t, tr.AddKeyed("k", "first"))
	assert.NoError(t, tr.AddKeyed("k", "second"))
	assert.NoError(t, tr.AddKeyed("a", "other"))

	assert.NoError(t, tr.Remove("k"))

	assert.Equal(t, 2, tr.Size())
	matches, err := tr.FindAll("k")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
}
