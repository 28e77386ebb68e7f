package set

import (
	"github.com/denismitr/contiguous/collection"
)

// Set is a mutable finite set with the usual algebra. Every operation that
// takes another sequence treats nil as an invalid argument.
type Set[T any] interface {
	collection.Sequence[T]
	collection.Sized

	Add(item T) (modified bool, err error)
	Remove(item T) bool
	Clear()
	Contains(item T) bool
	Items() []T

	UnionWith(other collection.Sequence[T]) error
	IntersectWith(other collection.Sequence[T]) error
	ExceptWith(other collection.Sequence[T]) error
	SymmetricExceptWith(other collection.Sequence[T]) error

	IsSubsetOf(other collection.Sequence[T]) (bool, error)
	IsSupersetOf(other collection.Sequence[T]) (bool, error)
	IsProperSubsetOf(other collection.Sequence[T]) (bool, error)
	IsProperSupersetOf(other collection.Sequence[T]) (bool, error)
	Overlaps(other collection.Sequence[T]) (bool, error)
	SetEquals(other collection.Sequence[T]) (bool, error)
}
