package set

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/denismitr/contiguous/collection"
	"github.com/denismitr/contiguous/utils"
)

// ArraySet keeps its members in the prefix [0, count) of a plain array.
// Membership is a linear scan under the configured equality policy, and
// members stay in insertion order.
type ArraySet[T any] struct {
	buf     []T
	count   int
	version collection.Version
	cfg     config[T]
}

var _ Set[int] = (*ArraySet[int])(nil)

func New[T any](options ...Option[T]) *ArraySet[T] {
	return &ArraySet[T]{
		buf: make([]T, collection.DefaultCapacity),
		cfg: newConfig(options),
	}
}

// NewWithCapacity creates an empty set whose backing array holds capacity
// members. A capacity of 0 means the default.
func NewWithCapacity[T any](capacity int, options ...Option[T]) (*ArraySet[T], error) {
	if capacity < 0 {
		return nil, errors.Wrapf(
			collection.ErrInvalidArgument,
			"capacity must not be negative, got %d", capacity,
		)
	}

	if capacity == 0 {
		capacity = collection.DefaultCapacity
	}

	return &ArraySet[T]{
		buf: make([]T, capacity),
		cfg: newConfig(options),
	}, nil
}

// NewFrom creates a set from src. Duplicates collapse onto their first
// occurrence.
func NewFrom[T any](src collection.Sequence[T], options ...Option[T]) (*ArraySet[T], error) {
	if src == nil {
		return nil, errors.Wrap(collection.ErrInvalidArgument, "source sequence is nil")
	}

	return newFrom(src, newConfig(options))
}

func newFrom[T any](src collection.Sequence[T], cfg config[T]) (*ArraySet[T], error) {
	capacity := collection.DefaultCapacity
	if hint, ok := collection.SizeHint(src); ok && hint > capacity {
		capacity = hint
	}

	s := &ArraySet[T]{
		buf: make([]T, capacity),
		cfg: cfg,
	}

	for item := range src.All() {
		if _, err := s.Add(item); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *ArraySet[T]) Len() int {
	return s.count
}

// Cap returns the length of the backing array.
func (s *ArraySet[T]) Cap() int {
	return len(s.buf)
}

// IsReadOnly is always false.
func (s *ArraySet[T]) IsReadOnly() bool {
	return false
}

// Add inserts item unless an equal member is present.
func (s *ArraySet[T]) Add(item T) (bool, error) {
	if s.indexOf(item) >= 0 {
		return false, nil
	}

	if s.count == len(s.buf) {
		if err := s.grow(s.count + 1); err != nil {
			return false, err
		}
	}

	s.buf[s.count] = item
	s.count++
	s.version.Bump()

	return true, nil
}

// Remove deletes item and shifts the following members left. The backing
// array is trimmed once the set drops below TrimExcessThreshold.
func (s *ArraySet[T]) Remove(item T) bool {
	idx := s.indexOf(item)
	if idx < 0 {
		return false
	}

	copy(s.buf[idx:], s.buf[idx+1:s.count])
	s.count--
	s.buf[s.count] = utils.GetZero[T]()
	s.version.Bump()

	if s.count < s.TrimExcessThreshold() {
		s.TrimExcess()
	}

	return true
}

func (s *ArraySet[T]) Contains(item T) bool {
	return s.indexOf(item) >= 0
}

// Clear drops every member. The backing array is kept.
func (s *ArraySet[T]) Clear() {
	clear(s.buf[:s.count])
	s.count = 0
	s.version.Bump()
}

// TrimExcess shrinks the backing array to exactly Len slots.
func (s *ArraySet[T]) TrimExcess() {
	if len(s.buf) == s.count {
		return
	}

	s.resize(s.count)
}

// TrimExcessThreshold is the member count below which Remove trims the
// backing array.
func (s *ArraySet[T]) TrimExcessThreshold() int {
	if len(s.buf) > collection.DefaultCapacity {
		return len(s.buf) / 2
	}

	return collection.DefaultCapacity
}

// CopyTo copies the members into dst starting at start. Nothing is written
// unless all of them fit.
func (s *ArraySet[T]) CopyTo(dst []T, start int) error {
	if dst == nil {
		return errors.Wrap(collection.ErrInvalidArgument, "destination is nil")
	}

	if start < 0 || start > len(dst) || len(dst)-start < s.count {
		return errors.Wrapf(
			collection.ErrInvalidArgument,
			"cannot copy %d members into a slice of length %d at index %d", s.count, len(dst), start,
		)
	}

	copy(dst[start:], s.buf[:s.count])
	return nil
}

// Items returns a copy of the members in storage order.
func (s *ArraySet[T]) Items() []T {
	items := make([]T, s.count)
	copy(items, s.buf[:s.count])
	return items
}

// All yields the members in storage order. It panics with
// collection.ErrConcurrentModification if the set is modified while the
// loop is running; use Iterator to get the error as a value.
func (s *ArraySet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterator()
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

func (s *ArraySet[T]) indexOf(item T) int {
	for i := 0; i < s.count; i++ {
		if s.cfg.eq.Equal(s.buf[i], item) {
			return i
		}
	}

	return -1
}

func (s *ArraySet[T]) isSelf(other collection.Sequence[T]) bool {
	o, ok := other.(*ArraySet[T])
	return ok && o == s
}

// reserve pre-grows the backing array for n members, staying within the
// configured limit. Exceeding the limit is left to Add to report.
func (s *ArraySet[T]) reserve(n int) {
	if n <= len(s.buf) {
		return
	}

	limit := s.cfg.maxCapacity
	if limit <= 0 || limit > collection.MaxLength {
		limit = collection.MaxLength
	}

	if n > limit {
		n = limit
	}

	if n > len(s.buf) {
		s.resize(n)
	}
}

func (s *ArraySet[T]) grow(required int) error {
	capacity, err := collection.Grow(len(s.buf), required, s.cfg.maxCapacity)
	if err != nil {
		return errors.Wrap(err, "could not grow set")
	}

	s.resize(capacity)
	return nil
}

func (s *ArraySet[T]) resize(capacity int) {
	newBuf := make([]T, capacity)
	copy(newBuf, s.buf[:s.count])
	s.buf = newBuf
	s.version.Bump()
}
