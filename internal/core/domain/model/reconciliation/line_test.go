package reconciliation_test

import (
	"testing"
	"time"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/core/domain/model/reconciliation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLine(t *testing.T, storeInventory, confirmed int) *reconciliation.Line {
	t.Helper()
	l, err := reconciliation.NewLine(kernel.NewUUID(), "sku-1", storeInventory, confirmed)
	require.NoError(t, err)
	return l
}

func TestNewLine(t *testing.T) {
	t.Run("should start unlocked at the confirmed quantity", func(t *testing.T) {
		l := newTestLine(t, 10, 2)

		require.NoError(t, l.Validate())
		assert.Equal(t, 2, l.InputQty())
		assert.Equal(t, 0, l.Diff())
		assert.Equal(t, 12, l.MaxInput())
		assert.False(t, l.Locked())
		assert.False(t, l.ChangedSinceBaseline())
	})

	t.Run("should fail with empty sku", func(t *testing.T) {
		_, err := reconciliation.NewLine(kernel.NewUUID(), "", 10, 2)
		require.Error(t, err)
	})

	t.Run("should fail with negative quantities", func(t *testing.T) {
		_, err := reconciliation.NewLine(kernel.NewUUID(), "sku-1", -1, 2)
		require.Error(t, err)

		_, err = reconciliation.NewLine(kernel.NewUUID(), "sku-1", 10, -2)
		require.Error(t, err)
	})
}

func TestRestoreLine(t *testing.T) {
	id := kernel.NewUUID()
	lockedAt := time.Now().Add(-time.Minute)

	t.Run("should restore locked state", func(t *testing.T) {
		l, err := reconciliation.RestoreLine(id, "sku-1", 10, 2, 5, 2, true, lockedAt, "clerk-3", 4)

		require.NoError(t, err)
		assert.Equal(t, 5, l.InputQty())
		assert.Equal(t, -3, l.Diff())
		assert.True(t, l.Locked())
		assert.Equal(t, lockedAt, l.LockedAt())
		assert.Equal(t, "clerk-3", l.LockedBy())
		assert.Equal(t, 4, l.Version())
		assert.True(t, l.ChangedSinceBaseline())
	})

	t.Run("should reject persisted input above bound", func(t *testing.T) {
		_, err := reconciliation.RestoreLine(id, "sku-1", 10, 2, 13, 2, false, time.Time{}, "", 1)
		require.Error(t, err)
	})
}

func TestLine_EditInput(t *testing.T) {
	t.Run("should accept count at the upper bound", func(t *testing.T) {
		l := newTestLine(t, 10, 2)

		err := l.EditInput("12")

		require.NoError(t, err)
		assert.Equal(t, 12, l.InputQty())
		assert.Equal(t, -10, l.Diff())
		assert.True(t, l.ChangedSinceBaseline())
	})

	t.Run("should reject count above the bound without mutating", func(t *testing.T) {
		l := newTestLine(t, 10, 2)
		require.NoError(t, l.EditInput("7"))

		err := l.EditInput("13")

		require.ErrorIs(t, err, reconciliation.ErrExceedsAvailable)
		assert.Equal(t, 7, l.InputQty())
		assert.Equal(t, -5, l.Diff())
	})

	t.Run("should reject empty, non-numeric, and negative input", func(t *testing.T) {
		l := newTestLine(t, 10, 2)
		require.NoError(t, l.EditInput("4"))

		for _, raw := range []string{"", "  ", "abc", "4.5", "-1"} {
			err := l.EditInput(raw)

			require.ErrorIs(t, err, reconciliation.ErrInvalidInput, "input %q", raw)
			assert.Equal(t, 4, l.InputQty(), "input %q must not mutate", raw)
		}
	})

	t.Run("should accept zero count", func(t *testing.T) {
		l := newTestLine(t, 10, 2)

		require.NoError(t, l.EditInput("0"))
		assert.Equal(t, 0, l.InputQty())
		assert.Equal(t, 2, l.Diff())
	})

	t.Run("editing back to baseline clears the changed flag", func(t *testing.T) {
		l := newTestLine(t, 10, 2)

		require.NoError(t, l.EditInput("5"))
		assert.True(t, l.ChangedSinceBaseline())

		require.NoError(t, l.EditInput("2"))
		assert.False(t, l.ChangedSinceBaseline())
	})

	t.Run("locked line rejects every edit", func(t *testing.T) {
		l := newTestLine(t, 10, 2)
		require.NoError(t, l.Lock("clerk-1"))

		for _, raw := range []string{"5", "0", "abc", ""} {
			err := l.EditInput(raw)

			require.ErrorIs(t, err, reconciliation.ErrAlreadyLocked, "input %q", raw)
		}
		assert.Equal(t, 2, l.InputQty())
	})
}

func TestLine_Lock(t *testing.T) {
	t.Run("should lock once and record the actor", func(t *testing.T) {
		l := newTestLine(t, 10, 2)

		require.NoError(t, l.Lock("clerk-1"))

		assert.True(t, l.Locked())
		assert.Equal(t, "clerk-1", l.LockedBy())
		assert.False(t, l.LockedAt().IsZero())
	})

	t.Run("should fail on an already locked line", func(t *testing.T) {
		l := newTestLine(t, 10, 2)
		require.NoError(t, l.Lock("clerk-1"))

		err := l.Lock("clerk-2")

		require.ErrorIs(t, err, reconciliation.ErrAlreadyLocked)
		assert.Equal(t, "clerk-1", l.LockedBy())
	})
}

func TestLine_Validate(t *testing.T) {
	var zero reconciliation.Line
	require.ErrorIs(t, zero.Validate(), reconciliation.ErrLineIsNotConstructed)

	var nilLine *reconciliation.Line
	require.ErrorIs(t, nilLine.Validate(), reconciliation.ErrLineIsNotConstructed)
}
