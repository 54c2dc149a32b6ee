package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ja-he/makeymakey/internal/input"
	"github.com/ja-he/makeymakey/internal/sequence"
)

func TestBuffer(t *testing.T) {
	t.Run("evicts oldest over limit", func(t *testing.T) {
		b := sequence.NewBuffer(3)
		for _, id := range []input.KeyID{"A", "B", "C", "D", "E"} {
			b.Push(id)
			assert.LessOrEqual(t, b.Len(), 3)
		}
		assert.Equal(t, []input.KeyID{"C", "D", "E"}, b.Snapshot())
	})

	t.Run("tail", func(t *testing.T) {
		b := sequence.NewBuffer(0)
		b.Push("A")
		b.Push("B")
		assert.Nil(t, b.Tail(3))
		assert.Equal(t, []input.KeyID{"B"}, b.Tail(1))
		assert.Equal(t, []input.KeyID{"A", "B"}, b.Tail(2))
	})

	t.Run("reset", func(t *testing.T) {
		b := sequence.NewBuffer(5)
		b.Push("A")
		b.Reset()
		b.Reset()
		assert.Equal(t, 0, b.Len())
		assert.Empty(t, b.Snapshot())
	})

	t.Run("default limit", func(t *testing.T) {
		b := sequence.NewBuffer(-1)
		for i := 0; i < 2*sequence.DefaultBufferLength; i++ {
			b.Push("X")
		}
		assert.Equal(t, sequence.DefaultBufferLength, b.Len())
	})
}

func TestRegistry(t *testing.T) {
	r := sequence.NewRegistry()
	first := r.Register("UP DOWN", []input.KeyID{"UP", "DOWN"})
	second := r.Register("UP DOWN", []input.KeyID{"LEFT", "RIGHT"})
	assert.Same(t, first, second)
	assert.Equal(t, []input.KeyID{"UP", "DOWN"}, second.Keys)
	assert.Equal(t, 1, r.Len())
	assert.Nil(t, r.Get("DOWN UP"))
	assert.Equal(t, []string{"UP DOWN"}, r.Canonicals())
}
