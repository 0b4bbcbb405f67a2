package transduce_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-transduce/transduce"
)

// drainAll pulls a producer to exhaustion erroring the test on failure.
func drainAll[T any](t *testing.T, producer transduce.Producer[T]) (collected []T) {
	t.Helper()
	for {
		value, ok, err := producer.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			return
		}
		collected = append(collected, value)
	}
}

// oddsIncremented keeps the odd numbers and increments them, the pipeline
// used across the driver tests so their results can be compared.
func oddsIncremented() transduce.Transducer[[]int, int, int] {
	return transduce.Compose(
		transduce.Filter[[]int](func(n int) bool { return n%2 == 1 }),
		transduce.Map[[]int](func(n int) int { return n + 1 }),
	)
}
