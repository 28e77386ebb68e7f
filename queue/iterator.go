package queue

import (
	"github.com/denismitr/contiguous/collection"
	"github.com/denismitr/contiguous/utils"
)

// Iterator walks a queue in FIFO order without consuming it.
//
//	it := q.Iterator()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// Any structural change to the queue after the iterator was created makes
// the next call to Next or Reset fail with collection.ErrConcurrentModification.
type Iterator[T any] struct {
	q       *Queue[T]
	version collection.Version
	index   int
	current T
	err     error
}

// Iterator returns a cursor positioned before the first element.
func (q *Queue[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		q:       q,
		version: q.version,
		index:   -1,
	}
}

// Next advances to the next element and reports whether there is one.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}

	if err := it.q.version.Check(it.version); err != nil {
		it.fail(err)
		return false
	}

	if it.index+1 >= it.q.count {
		it.index = it.q.count
		it.current = utils.GetZero[T]()
		return false
	}

	it.index++
	it.current = it.q.at(it.index)
	return true
}

// Value returns the element at the current position.
func (it *Iterator[T]) Value() T {
	return it.current
}

// Err returns the error that stopped the iteration, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Reset moves the cursor back before the first element.
func (it *Iterator[T]) Reset() error {
	if it.err != nil {
		return it.err
	}

	if err := it.q.version.Check(it.version); err != nil {
		it.fail(err)
		return err
	}

	it.index = -1
	it.current = utils.GetZero[T]()
	return nil
}

func (it *Iterator[T]) fail(err error) {
	it.err = err
	it.current = utils.GetZero[T]()
}
