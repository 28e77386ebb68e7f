package collection

import (
	"iter"
)

type (
	// Sequence is a finite source of elements that can be walked more than once.
	Sequence[T any] interface {
		All() iter.Seq[T]
	}

	// Sized is implemented by sequences that know their length without
	// walking themselves.
	Sized interface {
		Len() int
	}

	// Slice adapts a plain slice to Sequence.
	Slice[T any] []T

	funcSequence[T any] struct {
		seq iter.Seq[T]
	}
)

var (
	_ Sequence[int] = Slice[int](nil)
	_ Sized         = Slice[int](nil)
)

// Of builds a sized sequence from the given items.
func Of[T any](items ...T) Slice[T] {
	return Slice[T](items)
}

func (s Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s {
			if !yield(item) {
				return
			}
		}
	}
}

func (s Slice[T]) Len() int {
	return len(s)
}

// FromSeq wraps an iterator as a Sequence with no size hint.
// A nil iterator yields a nil Sequence.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	if seq == nil {
		return nil
	}

	return funcSequence[T]{seq: seq}
}

func (f funcSequence[T]) All() iter.Seq[T] {
	return f.seq
}

// SizeHint reports the length of seq if it is cheap to obtain.
func SizeHint[T any](seq Sequence[T]) (int, bool) {
	if sized, ok := seq.(Sized); ok {
		return sized.Len(), true
	}

	return 0, false
}
