package set

import (
	"github.com/pkg/errors"

	"github.com/denismitr/contiguous/collection"
)

// UnionWith adds every element of other that is not yet a member.
func (s *ArraySet[T]) UnionWith(other collection.Sequence[T]) error {
	if other == nil {
		return errors.Wrap(collection.ErrInvalidArgument, "union with nil sequence")
	}

	if s.isSelf(other) {
		return nil
	}

	if hint, ok := collection.SizeHint(other); ok {
		s.reserve(s.count + hint)
	}

	for item := range other.All() {
		if _, err := s.Add(item); err != nil {
			return errors.Wrap(err, "union")
		}
	}

	s.version.Bump()
	return nil
}

// IntersectWith keeps only the members also found in other. The survivors
// are copied into a fresh backing array sized to the current count.
func (s *ArraySet[T]) IntersectWith(other collection.Sequence[T]) error {
	if other == nil {
		return errors.Wrap(collection.ErrInvalidArgument, "intersect with nil sequence")
	}

	if s.isSelf(other) {
		return nil
	}

	lookup, err := s.materialize(other)
	if err != nil {
		return errors.Wrap(err, "intersect")
	}

	newBuf := make([]T, s.count)
	n := 0
	for i := 0; i < s.count; i++ {
		if lookup.Contains(s.buf[i]) {
			newBuf[n] = s.buf[i]
			n++
		}
	}

	s.buf = newBuf
	s.count = n
	s.version.Bump()

	return nil
}

// ExceptWith removes every element of other from the set.
func (s *ArraySet[T]) ExceptWith(other collection.Sequence[T]) error {
	if other == nil {
		return errors.Wrap(collection.ErrInvalidArgument, "except with nil sequence")
	}

	if s.isSelf(other) {
		s.Clear()
		return nil
	}

	for item := range other.All() {
		s.Remove(item)
	}

	s.version.Bump()
	return nil
}

// SymmetricExceptWith leaves the elements found in exactly one of the set
// and other. Duplicates in other count once.
func (s *ArraySet[T]) SymmetricExceptWith(other collection.Sequence[T]) error {
	if other == nil {
		return errors.Wrap(collection.ErrInvalidArgument, "symmetric except with nil sequence")
	}

	if s.isSelf(other) {
		s.Clear()
		return nil
	}

	distinct, err := newFrom(other, s.cfg.scratch())
	if err != nil {
		return errors.Wrap(err, "symmetric except")
	}

	for i := 0; i < distinct.count; i++ {
		item := distinct.buf[i]
		if s.Remove(item) {
			continue
		}

		if _, err := s.Add(item); err != nil {
			return errors.Wrap(err, "symmetric except")
		}
	}

	s.version.Bump()
	return nil
}
