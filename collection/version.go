package collection

import (
	"github.com/pkg/errors"
)

// Version is a generation counter owned by a container. It is bumped on
// every structural mutation and never on reads, so a cursor that captured
// an older value knows the storage it walks has changed under it.
type Version uint64

// Bump advances the generation.
func (v *Version) Bump() {
	*v++
}

// Check returns ErrConcurrentModification if the live generation differs
// from the captured one.
func (v Version) Check(captured Version) error {
	if v != captured {
		return errors.Wrapf(
			ErrConcurrentModification,
			"captured version %d, live version %d", captured, v,
		)
	}

	return nil
}
