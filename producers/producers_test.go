package producers

import (
	"context"
	"fmt"
	"io"
	"slices"
	"testing"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-faker/faker/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/go-transduce/transduce"
	"github.com/go-transduce/transduce/commonerrors"
	"github.com/go-transduce/transduce/commonerrors/errortest"
	"github.com/go-transduce/transduce/config"
	"github.com/go-transduce/transduce/field"
	"github.com/go-transduce/transduce/logs/logstest"
)

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

func TestFromSlice(t *testing.T) {
	elements := []string{faker.Word(), faker.Word(), faker.Word()}
	producer := FromSlice(elements)
	assert.Equal(t, elements, drainAll(t, producer))
	// An exhausted producer stays exhausted.
	_, ok, err := producer.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, producer.Close())
}

func TestFromSliceClosed(t *testing.T) {
	producer := FromSlice([]int{1, 2, 3})
	require.NoError(t, producer.Close())
	_, ok, err := producer.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmpty(t *testing.T) {
	producer := Empty[string]()
	assert.Empty(t, drainAll(t, producer))
	require.NoError(t, producer.Close())
}

func TestFromRange(t *testing.T) {
	tests := []struct {
		start    int
		stop     int
		step     *int
		expected []int
	}{
		{2, 5, nil, []int{2, 3, 4}},
		{5, 2, nil, nil}, // empty, since stop < start
		{2, 10, field.ToOptionalInt(2), []int{2, 4, 6, 8}},
		{1, 10, field.ToOptionalInt(3), []int{1, 4, 7}},
		{10, 2, field.ToOptionalInt(-2), []int{10, 8, 6, 4}},
		{5, -1, field.ToOptionalInt(-1), []int{5, 4, 3, 2, 1, 0}},
		{0, 5, field.ToOptionalInt(0), nil},
		{2, 2, nil, nil},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("[%v,%v,%v]", test.start, test.stop, test.step), func(t *testing.T) {
			producer := FromRange(test.start, test.stop, test.step)
			assert.Equal(t, test.expected, drainAll(t, producer))
			require.NoError(t, producer.Close())
		})
	}
}

func TestFromSeq(t *testing.T) {
	elements := []int{1, 2, 3, 4}
	producer := FromSeq(slices.Values(elements))
	assert.Equal(t, elements, drainAll(t, producer))
	require.NoError(t, producer.Close())
}

func TestFromSeqClose(t *testing.T) {
	producer := FromSeq(slices.Values([]int{1, 2, 3}))
	_, ok, err := producer.Next(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, producer.Close())
	_, ok, err = producer.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	// Closing again is harmless.
	require.NoError(t, producer.Close())
}

func TestFromChannel(t *testing.T) {
	defer goleak.VerifyNone(t)
	source := make(chan string, 2)
	go func() {
		source <- "first"
		source <- "second"
		close(source)
	}()
	producer := FromChannel(source)
	assert.Equal(t, []string{"first", "second"}, drainAll(t, producer))
	require.NoError(t, producer.Close())
}

func TestFromChannelCancellation(t *testing.T) {
	producer := FromChannel(make(chan int))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := producer.Next(ctx)
	assert.False(t, ok)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
	require.NoError(t, producer.Close())
}

func TestGenerate(t *testing.T) {
	t.Run("end of stream", func(t *testing.T) {
		count := 0
		producer := Generate(func(context.Context) (int, bool, error) {
			count++
			if count > 5 {
				return 0, false, io.EOF
			}
			return count, true, nil
		})
		assert.Equal(t, []int{1, 2, 3, 4, 5}, drainAll(t, producer))
		require.NoError(t, producer.Close())
	})
	t.Run("failure", func(t *testing.T) {
		producer := Generate(func(context.Context) (int, bool, error) {
			return 0, false, commonerrors.ErrConflict
		})
		_, ok, err := producer.Next(context.Background())
		assert.False(t, ok)
		errortest.AssertError(t, err, commonerrors.ErrConflict)
		require.NoError(t, producer.Close())
	})
	t.Run("common end of stream", func(t *testing.T) {
		producer := Generate(func(context.Context) (int, bool, error) {
			return 0, false, commonerrors.ErrEOF
		})
		_, ok, err := producer.Next(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("closed", func(t *testing.T) {
		producer := Generate(func(context.Context) (int, bool, error) {
			return 1, true, nil
		})
		require.NoError(t, producer.Close())
		_, ok, err := producer.Next(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepeat(t *testing.T) {
	value := faker.Word()
	producer := Repeat(value, 3)
	assert.Equal(t, []string{value, value, value}, drainAll(t, producer))
	require.NoError(t, producer.Close())
}

func TestCounting(t *testing.T) {
	counting := NewCounting(FromSlice([]int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, drainAll(t, counting))
	// Exhaustion is only discovered by the extra pull returning no element.
	assert.Equal(t, int64(4), counting.Pulls())
	assert.Zero(t, counting.Closes())
	require.NoError(t, counting.Close())
	assert.Equal(t, int64(1), counting.Closes())
}

func TestConcat(t *testing.T) {
	first := NewCounting(FromSlice([]int{1, 2}))
	second := NewCounting(Empty[int]())
	third := NewCounting(FromSlice([]int{3}))
	producer := Concat[int](first, second, third)
	assert.Equal(t, []int{1, 2, 3}, drainAll(t, producer))
	require.NoError(t, producer.Close())
	assert.Equal(t, int64(1), first.Closes())
	assert.Equal(t, int64(1), second.Closes())
	assert.Equal(t, int64(1), third.Closes())
	// Closing again does not close the underlying producers twice.
	require.NoError(t, producer.Close())
	assert.Equal(t, int64(1), first.Closes())
}

type closeFailingProducer struct {
	closeErr error
}

func (p *closeFailingProducer) Next(context.Context) (value int, ok bool, err error) {
	return
}

func (p *closeFailingProducer) Close() error {
	return p.closeErr
}

func TestConcatCloseAggregation(t *testing.T) {
	producer := Concat[int](
		&closeFailingProducer{closeErr: commonerrors.ErrConflict},
		FromSlice([]int{1}),
		&closeFailingProducer{closeErr: commonerrors.ErrInvalid},
	)
	err := producer.Close()
	errortest.AssertError(t, err, commonerrors.ErrConflict)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}

type flakyProducer struct {
	failures int
	attempts int
	produced bool
}

func (p *flakyProducer) Next(context.Context) (value string, ok bool, err error) {
	p.attempts++
	if p.failures > 0 {
		p.failures--
		err = commonerrors.ErrConflict
		return
	}
	if p.produced {
		return
	}
	p.produced = true
	return "value", true, nil
}

func (p *flakyProducer) Close() error { return nil }

func TestWithRetry(t *testing.T) {
	t.Run("recovers", func(t *testing.T) {
		flaky := &flakyProducer{failures: 2}
		producer := WithRetry[string](flaky, retry.Attempts(5), retry.Delay(time.Millisecond))
		value, ok, err := producer.Next(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "value", value)
		assert.Equal(t, 3, flaky.attempts)
		_, ok, err = producer.Next(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
		require.NoError(t, producer.Close())
	})
	t.Run("attempts exhausted", func(t *testing.T) {
		flaky := &flakyProducer{failures: 10}
		producer := WithRetry[string](flaky, retry.Attempts(3), retry.Delay(time.Millisecond))
		_, ok, err := producer.Next(context.Background())
		assert.False(t, ok)
		errortest.AssertError(t, err, commonerrors.ErrConflict)
		assert.Equal(t, 3, flaky.attempts)
	})
	t.Run("cancellation is not retried", func(t *testing.T) {
		calls := 0
		cancelled := Generate(func(context.Context) (string, bool, error) {
			calls++
			return "", false, commonerrors.ErrCancelled
		})
		producer := WithRetry[string](cancelled, retry.Attempts(5), retry.Delay(time.Millisecond))
		_, ok, err := producer.Next(context.Background())
		assert.False(t, ok)
		errortest.AssertError(t, err, commonerrors.ErrCancelled)
		assert.Equal(t, 1, calls)
	})
}

func TestWithRetryPolicy(t *testing.T) {
	t.Run("disabled policy leaves the producer alone", func(t *testing.T) {
		underlying := FromSlice([]string{"a"})
		producer, err := WithRetryPolicy[string](underlying, logstest.NewTestLogger(t), config.DefaultNoRetryPolicyConfiguration())
		require.NoError(t, err)
		assert.Equal(t, underlying, producer)
	})
	t.Run("basic policy recovers", func(t *testing.T) {
		flaky := &flakyProducer{failures: 2}
		producer, err := WithRetryPolicy[string](flaky, logstest.NewTestLogger(t), config.DefaultBasicRetryPolicyConfiguration())
		require.NoError(t, err)
		value, ok, err := producer.Next(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "value", value)
		assert.Equal(t, 3, flaky.attempts)
	})
	t.Run("missing policy", func(t *testing.T) {
		_, err := WithRetryPolicy[string](FromSlice([]string{"a"}), logstest.NewTestLogger(t), nil)
		errortest.AssertError(t, err, commonerrors.ErrUndefined)
	})
	t.Run("invalid policy", func(t *testing.T) {
		_, err := WithRetryPolicy[string](FromSlice([]string{"a"}), logstest.NewTestLogger(t), &config.RetryPolicyConfiguration{
			Enabled:      true,
			RetryWaitMin: -time.Second,
		})
		errortest.AssertError(t, err, commonerrors.ErrInvalid)
	})
}

func TestFromLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "input.txt", []byte("alpha\nbeta\ngamma\n"), 0644))
	producer := FromLines(fs, "input.txt")
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, drainAll(t, producer))
	require.NoError(t, producer.Close())
	require.NoError(t, producer.Close())
}

func TestFromLinesMissingFile(t *testing.T) {
	producer := FromLines(afero.NewMemMapFs(), "no-such-file.txt")
	_, ok, err := producer.Next(context.Background())
	assert.False(t, ok)
	errortest.AssertError(t, err, commonerrors.ErrNotFound)
	require.NoError(t, producer.Close())
}

func TestFromGlob(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data/sub", 0755))
	require.NoError(t, afero.WriteFile(fs, "/data/a.txt", []byte(faker.Sentence()), 0644))
	require.NoError(t, afero.WriteFile(fs, "/data/sub/b.txt", []byte(faker.Sentence()), 0644))
	require.NoError(t, afero.WriteFile(fs, "/data/sub/c.log", []byte(faker.Sentence()), 0644))
	producer := FromGlob(fs, "/data/**/*.txt")
	assert.Equal(t, []string{"/data/a.txt", "/data/sub/b.txt"}, drainAll(t, producer))
	// An exhausted walk stays exhausted.
	_, ok, err := producer.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, producer.Close())
}

func TestFromGlobInvalidPattern(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/a.txt", []byte(faker.Sentence()), 0644))
	producer := FromGlob(fs, "/data/[")
	_, ok, err := producer.Next(context.Background())
	assert.False(t, ok)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	require.NoError(t, producer.Close())
}

func TestFromGlobUndefinedFilesystem(t *testing.T) {
	producer := FromGlob(nil, "**")
	_, ok, err := producer.Next(context.Background())
	assert.False(t, ok)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	require.NoError(t, producer.Close())
}
