package set

import (
	"github.com/denismitr/contiguous/collection"
	"github.com/denismitr/contiguous/utils"
)

// Iterator walks the members of an ArraySet in storage order. Once the set
// is structurally modified, Next and Reset fail with
// collection.ErrConcurrentModification.
type Iterator[T any] struct {
	s       *ArraySet[T]
	version collection.Version
	index   int
	current T
	err     error
}

func (s *ArraySet[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		s:       s,
		version: s.version,
		index:   -1,
	}
}

func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}

	if err := it.s.version.Check(it.version); err != nil {
		it.err = err
		it.current = utils.GetZero[T]()
		return false
	}

	if it.index+1 >= it.s.count {
		it.index = it.s.count
		it.current = utils.GetZero[T]()
		return false
	}

	it.index++
	it.current = it.s.buf[it.index]
	return true
}

func (it *Iterator[T]) Value() T {
	return it.current
}

func (it *Iterator[T]) Err() error {
	return it.err
}

// Reset rewinds the iterator after checking the set is unchanged.
func (it *Iterator[T]) Reset() error {
	if it.err == nil {
		it.err = it.s.version.Check(it.version)
	}

	it.index = -1
	it.current = utils.GetZero[T]()
	return it.err
}
