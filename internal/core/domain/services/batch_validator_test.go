package services_test

import (
	"testing"

	"orderops/internal/core/domain/model/backorder"
	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLine(t *testing.T, sellerID string, ordered int) *backorder.Line {
	t.Helper()
	l, err := backorder.NewLine(kernel.NewUUID(), sellerID, "sku-1", ordered, 0, 1)
	require.NoError(t, err)
	return l
}

func TestBatchValidator_ValidateShipment(t *testing.T) {
	v := services.NewBatchValidator()

	t.Run("single seller batch with outstanding lines passes", func(t *testing.T) {
		lines := []*backorder.Line{newLine(t, "seller-1", 5), newLine(t, "seller-1", 3)}

		report := v.ValidateShipment(lines, true)

		assert.True(t, report.OK())
		assert.Len(t, report.Checks, 2)
		assert.Empty(t, report.FailedLineIDs())
	})

	t.Run("empty batch fails", func(t *testing.T) {
		report := v.ValidateShipment(nil, true)

		require.ErrorIs(t, report.Err, services.ErrEmptyBatch)
	})

	t.Run("mixed sellers fail the whole batch", func(t *testing.T) {
		lines := []*backorder.Line{newLine(t, "seller-1", 5), newLine(t, "seller-2", 3)}

		report := v.ValidateShipment(lines, true)

		require.ErrorIs(t, report.Err, services.ErrCrossSellerBatch)
		require.Len(t, report.FailedLineIDs(), 1)
		assert.True(t, report.FailedLineIDs()[0].IsEqual(lines[1].ID()))
	})

	t.Run("seller check is skipped for single-line shipment", func(t *testing.T) {
		report := v.ValidateShipment([]*backorder.Line{newLine(t, "seller-1", 5)}, false)

		assert.True(t, report.OK())
	})

	t.Run("fully shipped line fails with nothing to ship", func(t *testing.T) {
		shipped := newLine(t, "seller-1", 5)
		require.NoError(t, shipped.Ship("clerk-1"))
		open := newLine(t, "seller-1", 3)

		report := v.ValidateShipment([]*backorder.Line{shipped, open}, true)

		require.ErrorIs(t, report.Err, backorder.ErrNothingToShip)
		require.Len(t, report.Checks, 2)
		require.ErrorIs(t, report.Checks[0].Err, backorder.ErrNothingToShip)
		require.NoError(t, report.Checks[1].Err)
	})

	t.Run("report covers every failing line, not just the first", func(t *testing.T) {
		first := newLine(t, "seller-1", 5)
		require.NoError(t, first.Ship("clerk-1"))
		second := newLine(t, "seller-1", 3)
		require.NoError(t, second.Ship("clerk-1"))

		report := v.ValidateShipment([]*backorder.Line{first, second}, true)

		require.Error(t, report.Err)
		assert.Len(t, report.FailedLineIDs(), 2)
	})
}
