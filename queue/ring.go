package queue

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/denismitr/contiguous/collection"
	"github.com/denismitr/contiguous/utils"
)

// Queue is a FIFO queue over a ring buffer. The backing array doubles when
// full. Not safe for concurrent use.
type Queue[T any] struct {
	buf     []T
	head    int // next element to dequeue
	tail    int // next free slot
	count   int
	version collection.Version
	cfg     config[T]
}

var (
	_ collection.Sequence[int] = (*Queue[int])(nil)
	_ collection.Sized         = (*Queue[int])(nil)
)

// New creates an empty queue with the default capacity.
func New[T any](options ...Option[T]) *Queue[T] {
	return &Queue[T]{
		buf: make([]T, collection.DefaultCapacity),
		cfg: newConfig(options),
	}
}

// NewWithCapacity creates an empty queue able to hold capacity elements
// before growing. A capacity of 0 means the default.
func NewWithCapacity[T any](capacity int, options ...Option[T]) (*Queue[T], error) {
	if capacity < 0 {
		return nil, errors.Wrapf(
			collection.ErrInvalidArgument,
			"capacity must not be negative, got %d", capacity,
		)
	}

	if capacity == 0 {
		capacity = collection.DefaultCapacity
	}

	return &Queue[T]{
		buf: make([]T, capacity),
		cfg: newConfig(options),
	}, nil
}

// NewFrom creates a queue holding the elements of src in iteration order.
func NewFrom[T any](src collection.Sequence[T], options ...Option[T]) (*Queue[T], error) {
	if src == nil {
		return nil, errors.Wrap(collection.ErrInvalidArgument, "source sequence is nil")
	}

	capacity := collection.DefaultCapacity
	if hint, ok := collection.SizeHint(src); ok && hint > capacity {
		capacity = hint
	}

	q := &Queue[T]{
		buf: make([]T, capacity),
		cfg: newConfig(options),
	}

	for item := range src.All() {
		if err := q.Enqueue(item); err != nil {
			return nil, err
		}
	}

	return q, nil
}

func (q *Queue[T]) Len() int {
	return q.count
}

func (q *Queue[T]) IsEmpty() bool {
	return q.count == 0
}

// Cap returns the length of the backing array.
func (q *Queue[T]) Cap() int {
	return len(q.buf)
}

func (q *Queue[T]) Enqueue(item T) error {
	if q.count == len(q.buf) {
		if err := q.grow(q.count + 1); err != nil {
			return err
		}
	}

	q.buf[q.tail] = item
	q.tail = q.next(q.tail)
	q.count++
	q.version.Bump()

	return nil
}

func (q *Queue[T]) Dequeue() (T, error) {
	item, ok := q.TryDequeue()
	if !ok {
		return item, errors.Wrap(collection.ErrEmptyCollection, "dequeue")
	}

	return item, nil
}

func (q *Queue[T]) Peek() (T, error) {
	item, ok := q.TryPeek()
	if !ok {
		return item, errors.Wrap(collection.ErrEmptyCollection, "peek")
	}

	return item, nil
}

// TryDequeue removes and returns the head element. It reports false and the
// zero value when the queue is empty.
func (q *Queue[T]) TryDequeue() (T, bool) {
	if q.count == 0 {
		return utils.GetZero[T](), false
	}

	result := q.buf[q.head]
	q.buf[q.head] = utils.GetZero[T]()
	q.head = q.next(q.head)
	q.count--
	q.version.Bump()

	return result, true
}

// TryPeek returns the head element without removing it.
func (q *Queue[T]) TryPeek() (T, bool) {
	if q.count == 0 {
		return utils.GetZero[T](), false
	}

	return q.buf[q.head], true
}

// Clear drops every element and keeps the backing array.
func (q *Queue[T]) Clear() {
	if q.count > 0 {
		if q.head < q.tail {
			clear(q.buf[q.head:q.tail])
		} else {
			clear(q.buf[q.head:])
			clear(q.buf[:q.tail])
		}
	}

	q.head = 0
	q.tail = 0
	q.count = 0
	q.version.Bump()
}

func (q *Queue[T]) Contains(item T) bool {
	idx := q.head
	for i := 0; i < q.count; i++ {
		if q.cfg.eq.Equal(q.buf[idx], item) {
			return true
		}
		idx = q.next(idx)
	}

	return false
}

// ToSlice copies the elements into a new slice in FIFO order.
func (q *Queue[T]) ToSlice() []T {
	result := make([]T, q.count)
	q.copyTo(result)
	return result
}

// All yields the elements in FIFO order. It panics with
// collection.ErrConcurrentModification if the queue is modified while the
// loop is running; use Iterator to get the error as a value.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := q.Iterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}

		if err := it.Err(); err != nil {
			panic(err)
		}
	}
}

// at returns the i-th element in FIFO order.
func (q *Queue[T]) at(i int) T {
	return q.buf[(q.head+i)%len(q.buf)]
}

func (q *Queue[T]) next(idx int) int {
	idx++
	if idx == len(q.buf) {
		return 0
	}

	return idx
}

// copyTo writes the logical sequence to dst, unwrapping it if the occupied
// region crosses the end of the backing array.
func (q *Queue[T]) copyTo(dst []T) {
	if q.count == 0 {
		return
	}

	if q.head < q.tail {
		copy(dst, q.buf[q.head:q.tail])
		return
	}

	n := copy(dst, q.buf[q.head:])
	copy(dst[n:], q.buf[:q.tail])
}

func (q *Queue[T]) grow(required int) error {
	capacity, err := collection.Grow(len(q.buf), required, q.cfg.maxCapacity)
	if err != nil {
		return errors.Wrap(err, "could not grow queue")
	}

	newBuf := make([]T, capacity)
	q.copyTo(newBuf)
	q.buf = newBuf
	q.head = 0
	q.tail = q.count
	q.version.Bump()

	return nil
}
