package transduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReducerDefaults(t *testing.T) {
	rf := NewReducer[int, string](nil, nil, nil)
	assert.Zero(t, rf.Init())
	step := rf.Step(3, "ignored")
	assert.False(t, step.IsTerminated())
	assert.Equal(t, 3, step.Acc())
	assert.Equal(t, 3, rf.Complete(3))
}

func TestFold(t *testing.T) {
	rf := Fold(
		func() int { return 0 },
		func(acc int, input int) int { return acc + input },
	)
	acc := rf.Init()
	for _, input := range []int{1, 2, 3} {
		step := rf.Step(acc, input)
		require.False(t, step.IsTerminated())
		acc = step.Acc()
	}
	assert.Equal(t, 6, rf.Complete(acc))
}
