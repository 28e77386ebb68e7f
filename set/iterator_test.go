package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/contiguous/collection"
)

func TestIterator(t *testing.T) {
	t.Run("walks members in insertion order", func(t *testing.T) {
		s := mustSet(t, "foo", "bar", "baz")

		var items []string
		it := s.Iterator()
		for it.Next() {
			items = append(items, it.Value())
		}

		require.NoError(t, it.Err())
		assert.Equal(t, []string{"foo", "bar", "baz"}, items)
		assert.Equal(t, s.Items(), items)
	})

	t.Run("reads do not invalidate", func(t *testing.T) {
		s := mustSet(t, 1, 2, 3)
		it := s.Iterator()

		_ = s.Contains(2)
		_ = s.Items()
		_ = s.TrimExcessThreshold()
		_, _ = s.IsSubsetOf(collection.Of(1, 2, 3, 4))
		require.NoError(t, s.CopyTo(make([]int, 3), 0))

		assert.True(t, it.Next())
		assert.NoError(t, it.Err())
	})

	t.Run("it will fail after add", func(t *testing.T) {
		s := mustSet(t, 1, 2, 3)
		it := s.Iterator()
		assert.True(t, it.Next())

		_, err := s.Add(4)
		require.NoError(t, err)

		assert.False(t, it.Next())
		assert.ErrorIs(t, it.Err(), collection.ErrConcurrentModification)
	})

	t.Run("it will fail after remove", func(t *testing.T) {
		s := mustSet(t, 1, 2, 3)
		it := s.Iterator()
		s.Remove(1)

		assert.False(t, it.Next())
		assert.ErrorIs(t, it.Err(), collection.ErrConcurrentModification)
	})

	t.Run("it will fail after trim", func(t *testing.T) {
		s := mustSet(t, 1, 2, 3)
		it := s.Iterator()
		s.TrimExcess()

		assert.False(t, it.Next())
		assert.ErrorIs(t, it.Err(), collection.ErrConcurrentModification)
	})

	t.Run("it will fail after clear", func(t *testing.T) {
		s := mustSet[int](t)
		it := s.Iterator()
		s.Clear()

		assert.ErrorIs(t, it.Reset(), collection.ErrConcurrentModification)
		assert.False(t, it.Next())
	})

	t.Run("reset rewinds an unchanged set", func(t *testing.T) {
		s := mustSet(t, 1, 2)
		it := s.Iterator()
		for it.Next() {
		}

		require.NoError(t, it.Reset())
		assert.True(t, it.Next())
		assert.Equal(t, 1, it.Value())
	})

	t.Run("range loop panics on mutation", func(t *testing.T) {
		s := mustSet(t, 1, 2, 3)

		assert.Panics(t, func() {
			for v := range s.All() {
				s.Remove(v)
			}
		})
	})
}
