// Package equality defines the comparison containers use for membership,
// deduplication and set relations.
package equality

import (
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/constraints"
)

type (
	// Policy decides whether two elements are the same member.
	Policy[T any] interface {
		Equal(a, b T) bool
	}

	// Func adapts an ordinary function to Policy.
	Func[T any] func(a, b T) bool

	// Equaler is implemented by element types that know how to compare
	// themselves. Default prefers it over any other strategy.
	Equaler[T any] interface {
		Equal(other T) bool
	}
)

func (f Func[T]) Equal(a, b T) bool {
	return f(a, b)
}

// Float treats NaN as equal to itself and +0 as equal to -0.
func Float[T constraints.Float]() Policy[T] {
	return Func[T](floatEqual[T])
}

func floatEqual[T constraints.Float](a, b T) bool {
	// a != a only holds for NaN
	return a == b || (a != a && b != b)
}

// Default returns value equality for T.
//
// Floating point and complex kinds use the rules of Float. Comparable types
// without floats or interfaces inside compare with ==. Everything else falls
// back to a structural comparison in which NaNs equal themselves.
func Default[T any]() Policy[T] {
	typ := reflect.TypeOf((*T)(nil)).Elem()

	if typ.Implements(reflect.TypeOf((*Equaler[T])(nil)).Elem()) {
		return Func[T](func(a, b T) bool {
			return any(a).(Equaler[T]).Equal(b)
		})
	}

	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		return Func[T](func(a, b T) bool {
			x, y := reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float()
			return x == y || (math.IsNaN(x) && math.IsNaN(y))
		})
	case reflect.Complex64, reflect.Complex128:
		return Func[T](func(a, b T) bool {
			x, y := reflect.ValueOf(a).Complex(), reflect.ValueOf(b).Complex()
			return floatEqual(real(x), real(y)) && floatEqual(imag(x), imag(y))
		})
	}

	if typ.Comparable() && !hasInexactParts(typ) {
		return Func[T](func(a, b T) bool {
			return any(a) == any(b)
		})
	}

	opts := cmp.Options{
		cmpopts.EquateNaNs(),
		cmp.Exporter(func(reflect.Type) bool { return true }),
	}

	return Func[T](func(a, b T) bool {
		return cmp.Equal(a, b, opts)
	})
}

// hasInexactParts reports whether == on typ could disagree with the
// structural rules: floats (NaN) or interfaces (dynamic, possibly
// incomparable values).
func hasInexactParts(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128, reflect.Interface:
		return true
	case reflect.Array:
		return hasInexactParts(typ.Elem())
	case reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			if hasInexactParts(typ.Field(i).Type) {
				return true
			}
		}
	}

	return false
}
