package transduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	step := Continue(5)
	assert.Equal(t, 5, step.Acc())
	assert.False(t, step.IsTerminated())

	stopped := Terminated(10)
	assert.Equal(t, 10, stopped.Acc())
	assert.True(t, stopped.IsTerminated())
}

func TestStepTerminationDoesNotNest(t *testing.T) {
	stopped := Terminated("acc")
	assert.Equal(t, stopped, EnsureTerminated(stopped))
	assert.Equal(t, stopped, EnsureTerminated(EnsureTerminated(stopped)))

	flattened := EnsureTerminated(Continue("acc"))
	assert.True(t, flattened.IsTerminated())
	assert.Equal(t, "acc", flattened.Acc())
	assert.Equal(t, flattened, EnsureTerminated(flattened))
}
