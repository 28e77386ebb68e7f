package queue

import (
	"github.com/denismitr/contiguous/equality"
)

type (
	config[T any] struct {
		eq          equality.Policy[T]
		maxCapacity int
	}

	Option[T any] func(c *config[T])
)

func newConfig[T any](options []Option[T]) config[T] {
	cfg := config[T]{}
	for _, o := range options {
		o(&cfg)
	}

	if cfg.eq == nil {
		cfg.eq = equality.Default[T]()
	}

	return cfg
}

// WithEquality sets the policy Contains uses. Defaults to equality.Default.
func WithEquality[T any](eq equality.Policy[T]) Option[T] {
	return func(c *config[T]) {
		c.eq = eq
	}
}

// WithMaxCapacity caps how far the backing array may grow.
// Enqueue fails with collection.ErrCapacityExceeded beyond it.
func WithMaxCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		c.maxCapacity = n
	}
}
