package kernel_test

import (
	"testing"

	"orderops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.Len(t, id.String(), 36)
	assert.False(t, id.IsEqual(kernel.NewUUID()))
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid string round trips", func(t *testing.T) {
		const s = "550e8400-e29b-41d4-a716-446655440000"

		id, err := kernel.UUIDFromString(s)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, s, id.String())
	})

	t.Run("invalid string fails", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("valid bytes round trip", func(t *testing.T) {
		src := kernel.NewUUID()
		raw := src.Bytes()

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(src))
	})

	t.Run("wrong length fails", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})

	t.Run("nil UUID bytes fail validation", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.Error(t, zero.Validate())
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero.Validate())
}
