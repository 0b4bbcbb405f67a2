package transduce

import "context"

// Producer yields the elements of a reduction one at a time.
//
// Next returns the next element, or ok set to false once the source is
// exhausted, or an error if the source fails; drivers stop pulling after
// either of those. Close releases whatever the producer holds; drivers call
// it once on every path, including when the reduction stops early or panics,
// and implementations are expected to tolerate repeated calls.
type Producer[T any] interface {
	Next(ctx context.Context) (value T, ok bool, err error)
	Close() error
}
