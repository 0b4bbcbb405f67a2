package idgen

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDUniqueness(t *testing.T) {
	id1, err := GenerateUUID4()
	require.NoError(t, err)
	id2, err := GenerateUUID4()
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}

func TestUUIDValidity(t *testing.T) {
	id, err := GenerateUUID4()
	require.NoError(t, err)
	assert.Len(t, id, 36)
	assert.True(t, IsValidUUID(id))
	assert.False(t, IsValidUUID(faker.Word()))
}
