package collection

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrEmptyCollection        = errors.New("collection is empty")
	ErrConcurrentModification = errors.New("collection was modified during iteration")
	ErrCapacityExceeded       = errors.New("capacity exceeded")
)
