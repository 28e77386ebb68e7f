package queue_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/denismitr/contiguous/queue"
)

// Negative ops dequeue, the rest enqueue their own value.
func TestQueue_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("dequeues in enqueue order", prop.ForAll(
		func(ops []int, capacity int) bool {
			q, err := queue.NewWithCapacity[int](capacity)
			if err != nil {
				return false
			}

			var model []int
			for _, op := range ops {
				if op < 0 {
					v, ok := q.TryDequeue()
					if len(model) == 0 {
						if ok {
							return false
						}
						continue
					}
					if !ok || v != model[0] {
						return false
					}
					model = model[1:]
					continue
				}

				if err := q.Enqueue(op); err != nil {
					return false
				}
				model = append(model, op)
			}

			if q.Len() != len(model) {
				return false
			}

			for _, want := range model {
				got, err := q.Dequeue()
				if err != nil || got != want {
					return false
				}
			}

			return q.IsEmpty()
		},
		gen.SliceOf(gen.IntRange(-3, 100)),
		gen.IntRange(1, 8),
	))

	properties.Property("ToSlice equals the iteration order", prop.ForAll(
		func(items []int, drop int) bool {
			q, err := queue.NewWithCapacity[int](4)
			if err != nil {
				return false
			}

			for _, item := range items {
				if err := q.Enqueue(item); err != nil {
					return false
				}
			}

			for i := 0; i < drop; i++ {
				q.TryDequeue()
			}

			var iterated []int
			it := q.Iterator()
			for it.Next() {
				iterated = append(iterated, it.Value())
			}

			slice := q.ToSlice()
			if it.Err() != nil || len(slice) != len(iterated) {
				return false
			}

			for i := range slice {
				if slice[i] != iterated[i] {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}
