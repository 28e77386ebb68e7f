package set

import (
	"github.com/pkg/errors"

	"github.com/denismitr/contiguous/collection"
	"github.com/denismitr/contiguous/equality"
)

// Sequences with at most this many elements are checked directly instead of
// being copied into a temporary set first.
const smallSequence = 4

type (
	lookup[T any] interface {
		Contains(item T) bool
		Len() int
	}

	// smallLookup holds the distinct elements of a tiny sequence.
	smallLookup[T any] struct {
		items []T
		eq    equality.Policy[T]
	}
)

func newSmallLookup[T any](seq collection.Sequence[T], eq equality.Policy[T]) *smallLookup[T] {
	l := &smallLookup[T]{eq: eq, items: make([]T, 0, smallSequence)}
	for item := range seq.All() {
		if !l.Contains(item) {
			l.items = append(l.items, item)
		}
	}

	return l
}

func (l *smallLookup[T]) Contains(item T) bool {
	for _, candidate := range l.items {
		if l.eq.Equal(candidate, item) {
			return true
		}
	}

	return false
}

func (l *smallLookup[T]) Len() int {
	return len(l.items)
}

// materialize turns other into a deduplicated membership test using the
// equality of s.
func (s *ArraySet[T]) materialize(other collection.Sequence[T]) (lookup[T], error) {
	if hint, ok := collection.SizeHint(other); ok && hint <= smallSequence {
		return newSmallLookup(other, s.cfg.eq), nil
	}

	distinct, err := newFrom(other, s.cfg.scratch())
	if err != nil {
		return nil, err
	}

	return distinct, nil
}

// containsAll reports whether every member of s is in l.
func (s *ArraySet[T]) containsAll(l lookup[T]) bool {
	for i := 0; i < s.count; i++ {
		if !l.Contains(s.buf[i]) {
			return false
		}
	}

	return true
}

func (s *ArraySet[T]) IsSubsetOf(other collection.Sequence[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(collection.ErrInvalidArgument, "subset of nil sequence")
	}

	if s.isSelf(other) || s.count == 0 {
		return true, nil
	}

	l, err := s.materialize(other)
	if err != nil {
		return false, errors.Wrap(err, "subset")
	}

	return s.count <= l.Len() && s.containsAll(l), nil
}

func (s *ArraySet[T]) IsProperSubsetOf(other collection.Sequence[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(collection.ErrInvalidArgument, "proper subset of nil sequence")
	}

	if s.isSelf(other) {
		return false, nil
	}

	l, err := s.materialize(other)
	if err != nil {
		return false, errors.Wrap(err, "proper subset")
	}

	return s.count < l.Len() && s.containsAll(l), nil
}

func (s *ArraySet[T]) IsSupersetOf(other collection.Sequence[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(collection.ErrInvalidArgument, "superset of nil sequence")
	}

	if s.isSelf(other) {
		return true, nil
	}

	return s.containsEvery(other), nil
}

func (s *ArraySet[T]) IsProperSupersetOf(other collection.Sequence[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(collection.ErrInvalidArgument, "proper superset of nil sequence")
	}

	if s.isSelf(other) || s.count == 0 {
		return false, nil
	}

	l, err := s.materialize(other)
	if err != nil {
		return false, errors.Wrap(err, "proper superset")
	}

	return l.Len() < s.count && s.containsEvery(other), nil
}

// Overlaps reports whether s and other share at least one element.
func (s *ArraySet[T]) Overlaps(other collection.Sequence[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(collection.ErrInvalidArgument, "overlaps nil sequence")
	}

	if s.isSelf(other) {
		return s.count > 0, nil
	}

	if s.count == 0 {
		return false, nil
	}

	for item := range other.All() {
		if s.Contains(item) {
			return true, nil
		}
	}

	return false, nil
}

func (s *ArraySet[T]) SetEquals(other collection.Sequence[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(collection.ErrInvalidArgument, "equals nil sequence")
	}

	if s.isSelf(other) {
		return true, nil
	}

	l, err := s.materialize(other)
	if err != nil {
		return false, errors.Wrap(err, "equals")
	}

	return s.count == l.Len() && s.containsAll(l), nil
}

// containsEvery reports whether every element of other is a member of s.
func (s *ArraySet[T]) containsEvery(other collection.Sequence[T]) bool {
	for item := range other.All() {
		if !s.Contains(item) {
			return false
		}
	}

	return true
}
