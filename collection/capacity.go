package collection

import (
	"github.com/pkg/errors"
)

const (
	// DefaultCapacity is the minimum backing array length of a freshly
	// constructed container.
	DefaultCapacity = 16

	// MaxLength is the largest backing array any container will allocate.
	MaxLength = 0x7FFFFFC7
)

// Grow computes the next backing array length for a container that
// currently holds old slots and needs at least required of them.
// The result doubles old, is at least required and never exceeds
// min(limit, MaxLength). A non-positive limit means MaxLength.
func Grow(old, required, limit int) (int, error) {
	if limit <= 0 || limit > MaxLength {
		limit = MaxLength
	}

	newCapacity := 2 * old
	if newCapacity < old {
		// overflow
		newCapacity = limit
	}

	if newCapacity > limit {
		newCapacity = limit
	}

	if newCapacity < required {
		newCapacity = required
	}

	if newCapacity > limit {
		return 0, errors.Wrapf(
			ErrCapacityExceeded,
			"required %d slots, limit is %d", required, limit,
		)
	}

	return newCapacity, nil
}
